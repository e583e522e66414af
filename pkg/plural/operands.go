package plural

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxFractionDigits keeps the fraction operands within int64.
const maxFractionDigits = 18

// Operands holds the CLDR plural operands of a decimal number.
//
//	I: integer digits of the absolute value
//	V: number of visible fraction digits, with trailing zeros
//	W: number of visible fraction digits, without trailing zeros
//	F: visible fraction digits, with trailing zeros
//	T: visible fraction digits, without trailing zeros
//
// See https://unicode.org/reports/tr35/tr35-numbers.html#Operands.
type Operands struct {
	I, V, W, F, T int64
	src           string
}

// FromInt returns the operands of an integer.
func FromInt(n int64) Operands {
	i := n
	if i < 0 {
		i = -i
	}
	if i < 0 {
		// math.MinInt64 has no positive counterpart.
		i = math.MaxInt64
	}
	return Operands{I: i, src: strconv.FormatInt(n, 10)}
}

// FromUint returns the operands of an unsigned integer.
func FromUint(n uint64) Operands {
	i := int64(n)
	if n > math.MaxInt64 {
		i = math.MaxInt64
	}
	return Operands{I: i, src: strconv.FormatUint(n, 10)}
}

// FromFloat returns the operands of a float using its shortest decimal
// representation, so 1.5 yields v=1 and 2.0 yields v=0.
func FromFloat(f float64) (Operands, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Operands{}, fmt.Errorf("%w: %v", ErrInvalidQuantity, f)
	}
	return ParseOperands(strconv.FormatFloat(f, 'f', -1, 64))
}

// ParseOperands parses a plain decimal string such as "-12", "1.50" or "0.3".
// Exponent notation is not accepted. Trailing fraction zeros are significant
// for V and F, as CLDR requires. Integer parts beyond int64 are clamped to
// math.MaxInt64, as FromUint does.
func ParseOperands(s string) (Operands, error) {
	num := strings.TrimSpace(s)
	num = strings.TrimPrefix(strings.TrimPrefix(num, "-"), "+")

	intPart, fracPart, hasDot := strings.Cut(num, ".")
	if intPart == "" || (hasDot && fracPart == "") || !isDigits(intPart) || !isDigits(fracPart) {
		return Operands{}, fmt.Errorf("%w: %q", ErrInvalidQuantity, s)
	}
	if len(fracPart) > maxFractionDigits {
		return Operands{}, fmt.Errorf("%w: %q has too many fraction digits", ErrInvalidQuantity, s)
	}

	// intPart holds only digits, so the only possible failure is overflow.
	i, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		i = math.MaxInt64
	}

	ops := Operands{I: i, src: strings.TrimSpace(s)}
	if fracPart == "" {
		return ops, nil
	}

	ops.V = int64(len(fracPart))
	ops.F, _ = strconv.ParseInt(fracPart, 10, 64)

	trimmed := strings.TrimRight(fracPart, "0")
	ops.W = int64(len(trimmed))
	if trimmed != "" {
		ops.T, _ = strconv.ParseInt(trimmed, 10, 64)
	}

	return ops, nil
}

// NewOperands converts a Go number to operands. It accepts every integer and
// float kind, json.Number and Operands. Anything else is ErrInvalidQuantity.
func NewOperands(quantity any) (Operands, error) {
	switch q := quantity.(type) {
	case Operands:
		return q, nil
	case *Operands:
		if q == nil {
			return Operands{}, fmt.Errorf("%w: nil operands", ErrInvalidQuantity)
		}
		return *q, nil
	case int:
		return FromInt(int64(q)), nil
	case int8:
		return FromInt(int64(q)), nil
	case int16:
		return FromInt(int64(q)), nil
	case int32:
		return FromInt(int64(q)), nil
	case int64:
		return FromInt(q), nil
	case uint:
		return FromUint(uint64(q)), nil
	case uint8:
		return FromUint(uint64(q)), nil
	case uint16:
		return FromUint(uint64(q)), nil
	case uint32:
		return FromUint(uint64(q)), nil
	case uint64:
		return FromUint(q), nil
	case float32:
		return FromFloat(float64(q))
	case float64:
		return FromFloat(q)
	case json.Number:
		return ParseOperands(q.String())
	default:
		return Operands{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidQuantity, quantity)
	}
}

// IsInteger reports whether the number has no visible fraction digits.
func (o Operands) IsInteger() bool {
	return o.V == 0
}

// String returns the number as it was given. Operands built by hand are
// rendered from I and F.
func (o Operands) String() string {
	if o.src != "" {
		return o.src
	}
	if o.V == 0 {
		return strconv.FormatInt(o.I, 10)
	}
	return fmt.Sprintf("%d.%0*d", o.I, int(o.V), o.F)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
