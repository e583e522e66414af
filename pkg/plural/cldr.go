package plural

import (
	"fmt"
	"math"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

type cldrProvider struct{}

// CLDR returns a Provider backed by the CLDR cardinal rules shipped with
// golang.org/x/text. Locale codes are parsed as BCP 47 tags ("ru", "pt-BR",
// "en_US"). Codes that do not parse, and codes whose base language has no
// cardinal rules in CLDR ("tlh", "qaa"), are reported as unsupported.
func CLDR() Provider {
	return cldrProvider{}
}

func (cldrProvider) Category(locale string, ops Operands) (Category, error) {
	tag, err := language.Parse(locale)
	if err != nil || tag == language.Und {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	if base, conf := tag.Base(); conf == language.No || !hasCardinalRules(base) {
		return "", fmt.Errorf("%w: %q has no plural rules", ErrUnsupportedLocale, locale)
	}

	form := plural.Cardinal.MatchPlural(tag, clampInt(ops.I), clampInt(ops.V), clampInt(ops.W), clampInt(ops.F), clampInt(ops.T))
	return fromForm(form), nil
}

func fromForm(f plural.Form) Category {
	switch f {
	case plural.Zero:
		return Zero
	case plural.One:
		return One
	case plural.Two:
		return Two
	case plural.Few:
		return Few
	case plural.Many:
		return Many
	default:
		return Other
	}
}

func clampInt(n int64) int {
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
