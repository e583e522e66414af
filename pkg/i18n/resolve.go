package i18n

import (
	"context"
	"fmt"
)

// Outcome is the result class of a path resolution.
type Outcome uint8

const (
	// Found means the path reached a non-null node.
	Found Outcome = iota + 1
	// ExplicitNull means the path reached a node stored as null.
	ExplicitNull
	// NotFound means a key was absent or an index was out of range.
	NotFound
	// WrongAccessKind means a segment did not fit the node it was applied to.
	WrongAccessKind
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case ExplicitNull:
		return "explicit_null"
	case NotFound:
		return "not_found"
	case WrongAccessKind:
		return "wrong_access_kind"
	default:
		return "unknown"
	}
}

// Resolution describes how a path was resolved.
type Resolution struct {
	// Node is set when Outcome is Found.
	Node *Node
	// Locale is the tree that produced the outcome.
	Locale string
	Path   Path
	// FailedAt is the index of the segment that stopped traversal for
	// NotFound and WrongAccessKind, and len(Path) otherwise.
	FailedAt int
	// FailedKind is the kind of the node the failing segment was applied to.
	FailedKind Kind
	Outcome    Outcome
	// Fallback is true when the default locale answered for another locale.
	Fallback bool
}

// Segment returns the segment at FailedAt.
func (r Resolution) Segment() (Segment, bool) {
	if r.FailedAt < 0 || r.FailedAt >= len(r.Path) {
		return Segment{}, false
	}
	return r.Path[r.FailedAt], true
}

// Resolve walks path in the tree of lang. When a key or index is missing and
// lang is not the default locale, the whole path is replayed against the
// default tree; values from the two trees are never mixed. Wrong access
// kinds and explicit nulls never fall back.
func (s *Store) Resolve(lang string, path Path) Resolution {
	res := walk(s.roots[lang], path)
	res.Locale = lang
	res.Path = path

	if res.Outcome == NotFound && lang != s.defaultLang {
		res = walk(s.roots[s.defaultLang], path)
		res.Locale = s.defaultLang
		res.Path = path
		res.Fallback = true
	}

	return res
}

func walk(root *Node, path Path) Resolution {
	n := root
	if n == nil {
		n = emptyMapping
	}

	for i, seg := range path {
		switch n.kind {
		case KindNull:
			// Traversing through an explicit null is a miss, so it may fall back.
			return Resolution{Outcome: NotFound, FailedAt: i, FailedKind: n.kind}
		case KindMapping:
			if seg.isIndex {
				return Resolution{Outcome: WrongAccessKind, FailedAt: i, FailedKind: n.kind}
			}
			child, ok := n.fields[seg.name]
			if !ok {
				return Resolution{Outcome: NotFound, FailedAt: i, FailedKind: n.kind}
			}
			n = child
		case KindSequence:
			if !seg.isIndex {
				return Resolution{Outcome: WrongAccessKind, FailedAt: i, FailedKind: n.kind}
			}
			if seg.index < 0 || seg.index >= len(n.items) {
				return Resolution{Outcome: NotFound, FailedAt: i, FailedKind: n.kind}
			}
			n = n.items[seg.index]
		default:
			return Resolution{Outcome: WrongAccessKind, FailedAt: i, FailedKind: n.kind}
		}
	}

	if n.kind == KindNull {
		return Resolution{Outcome: ExplicitNull, FailedAt: len(path)}
	}
	return Resolution{Outcome: Found, Node: n, FailedAt: len(path)}
}

// value resolves path for lang and wraps the result. This is the single
// place where the strictness policy is applied to lookups.
func (s *Store) value(ctx context.Context, lang string, path Path) (any, error) {
	res := s.Resolve(lang, path)

	switch res.Outcome {
	case Found:
		return s.wrap(ctx, lang, path, res.Node), nil

	case ExplicitNull:
		if !s.strict {
			s.report(ctx, lang, path, ReasonExplicitNull,
				fmt.Sprintf("Locale %q: key/index path %q has an explicit null value", lang, path.String()))
		}
		return newNull(lang, path), nil

	case NotFound:
		seg, _ := res.Segment()
		if s.strict {
			if seg.isIndex {
				return nil, &IndexOutOfRangeError{Locale: lang, Path: path.String(), Index: seg.index}
			}
			return nil, &MissingKeyError{Locale: lang, Path: path.String(), Key: seg.name}
		}
		reason := ReasonNotFoundKey
		if seg.isIndex {
			reason = ReasonNotFoundIndex
		}
		s.report(ctx, lang, path, reason,
			fmt.Sprintf("Locale %q: key/index path %q not found; null will be returned", lang, path.String()))
		return newNull(lang, path), nil

	default:
		seg, _ := res.Segment()
		access := "field"
		if seg.isIndex {
			access = "index"
		}
		return nil, &WrongAccessKindError{
			Locale: lang,
			Path:   path.String(),
			Access: access,
			Kind:   res.FailedKind,
		}
	}
}

// wrap turns a found node into the value handed to callers.
func (s *Store) wrap(ctx context.Context, lang string, path Path, n *Node) any {
	v := view{ctx: ctx, store: s, locale: lang, path: path, node: n}
	switch n.kind {
	case KindScalar:
		return n.scalar
	case KindSequence:
		return &List{view: v}
	case KindMapping:
		if n.IsPlural() {
			return &Plural{view: v}
		}
		return &Namespace{view: v}
	default:
		return newNull(lang, path)
	}
}
