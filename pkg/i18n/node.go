package i18n

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"
	"time"

	"github.com/dmitrymomot/dotlocale/pkg/plural"
)

// Kind identifies the shape of a Node.
type Kind uint8

const (
	KindNull Kind = iota
	KindScalar
	KindMapping
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Node is one value of a translation tree. Nodes are immutable once built and
// are shared by every view that reads them.
type Node struct {
	scalar any
	fields map[string]*Node
	items  []*Node
	kind   Kind
}

var nullNode = &Node{kind: KindNull}

// NullNode returns the explicit null node.
func NullNode() *Node {
	return nullNode
}

// NewScalar wraps a string, int64, float64 or bool.
func NewScalar[T string | int64 | float64 | bool](v T) *Node {
	return &Node{kind: KindScalar, scalar: v}
}

// NewMapping builds a mapping node. Nil children are stored as explicit nulls.
func NewMapping(fields map[string]*Node) *Node {
	n := &Node{kind: KindMapping, fields: make(map[string]*Node, len(fields))}
	for k, v := range fields {
		if v == nil {
			v = nullNode
		}
		n.fields[k] = v
	}
	return n
}

// NewSequence builds a sequence node. Nil items are stored as explicit nulls.
func NewSequence(items ...*Node) *Node {
	n := &Node{kind: KindSequence, items: make([]*Node, len(items))}
	for i, v := range items {
		if v == nil {
			v = nullNode
		}
		n.items[i] = v
	}
	return n
}

// Kind returns the node kind.
func (n *Node) Kind() Kind {
	return n.kind
}

// Value returns the scalar value, or nil for non-scalar nodes.
func (n *Node) Value() any {
	return n.scalar
}

// Field returns the child stored under name.
func (n *Node) Field(name string) (*Node, bool) {
	if n.kind != KindMapping {
		return nil, false
	}
	child, ok := n.fields[name]
	return child, ok
}

// Item returns the i-th element of a sequence.
func (n *Node) Item(i int) (*Node, bool) {
	if n.kind != KindSequence || i < 0 || i >= len(n.items) {
		return nil, false
	}
	return n.items[i], true
}

// Len returns the number of children of a mapping or sequence.
func (n *Node) Len() int {
	switch n.kind {
	case KindMapping:
		return len(n.fields)
	case KindSequence:
		return len(n.items)
	default:
		return 0
	}
}

func fromUint(v uint64) *Node {
	if v > math.MaxInt64 {
		return NewScalar(strconv.FormatUint(v, 10))
	}
	return NewScalar(int64(v))
}

// Keys returns the sorted keys of a mapping.
func (n *Node) Keys() []string {
	if n.kind != KindMapping {
		return nil
	}
	return slices.Sorted(maps.Keys(n.fields))
}

// IsPlural reports whether the node is a non-empty mapping whose keys are all
// plural category labels and whose values are scalars or nulls.
func (n *Node) IsPlural() bool {
	if n.kind != KindMapping || len(n.fields) == 0 {
		return false
	}
	for k, v := range n.fields {
		if !plural.IsCategory(k) {
			return false
		}
		if v.kind != KindScalar && v.kind != KindNull {
			return false
		}
	}
	return true
}

// FromValue converts decoded YAML, JSON or TOML data into a Node.
// Integers become int64, floats become float64, time.Time becomes an RFC 3339
// string and fmt.Stringer values become their string form. Unsigned values
// above math.MaxInt64 are kept as decimal strings.
func FromValue(v any) (*Node, error) {
	switch val := v.(type) {
	case nil:
		return nullNode, nil
	case *Node:
		if val == nil {
			return nullNode, nil
		}
		return val, nil
	case string:
		return NewScalar(val), nil
	case bool:
		return NewScalar(val), nil
	case int:
		return NewScalar(int64(val)), nil
	case int8:
		return NewScalar(int64(val)), nil
	case int16:
		return NewScalar(int64(val)), nil
	case int32:
		return NewScalar(int64(val)), nil
	case int64:
		return NewScalar(val), nil
	case uint:
		return fromUint(uint64(val)), nil
	case uint8:
		return NewScalar(int64(val)), nil
	case uint16:
		return NewScalar(int64(val)), nil
	case uint32:
		return NewScalar(int64(val)), nil
	case uint64:
		return fromUint(val), nil
	case float32:
		return NewScalar(float64(val)), nil
	case float64:
		return NewScalar(val), nil
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return NewScalar(i), nil
		}
		f, err := val.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %q: %s", ErrInvalidValue, val, err)
		}
		return NewScalar(f), nil
	case time.Time:
		return NewScalar(val.Format(time.RFC3339)), nil
	case map[string]any:
		fields := make(map[string]*Node, len(val))
		for k, child := range val {
			node, err := FromValue(child)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			fields[k] = node
		}
		return NewMapping(fields), nil
	case map[any]any:
		fields := make(map[string]*Node, len(val))
		for k, child := range val {
			key, ok := k.(string)
			if !ok {
				key = fmt.Sprint(k)
			}
			node, err := FromValue(child)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			fields[key] = node
		}
		return NewMapping(fields), nil
	case map[string]string:
		fields := make(map[string]*Node, len(val))
		for k, s := range val {
			fields[k] = NewScalar(s)
		}
		return NewMapping(fields), nil
	case []any:
		items := make([]*Node, len(val))
		for i, child := range val {
			node, err := FromValue(child)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			items[i] = node
		}
		return NewSequence(items...), nil
	case []string:
		items := make([]*Node, len(val))
		for i, s := range val {
			items[i] = NewScalar(s)
		}
		return NewSequence(items...), nil
	case []map[string]any:
		items := make([]*Node, len(val))
		for i, child := range val {
			node, err := FromValue(child)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			items[i] = node
		}
		return NewSequence(items...), nil
	case fmt.Stringer:
		if rv := reflect.ValueOf(val); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nullNode, nil
		}
		return NewScalar(val.String()), nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, v)
	}
}

// formatScalar renders a scalar for placeholder output.
func formatScalar(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
