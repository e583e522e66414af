package plural

import (
	"fmt"
	"strings"
)

// Rule selects a plural category for a number.
type Rule func(ops Operands) Category

// Rules is a Provider with per-locale rule overrides. Locales without an
// override are delegated to the fallback provider.
type Rules struct {
	rules    map[string]Rule
	fallback Provider
}

// NewRules creates a Provider that consults rules first and fallback second.
// A nil fallback makes every locale without a rule unsupported.
func NewRules(fallback Provider, rules map[string]Rule) (*Rules, error) {
	r := &Rules{
		rules:    make(map[string]Rule, len(rules)),
		fallback: fallback,
	}
	for locale, rule := range rules {
		if rule == nil {
			return nil, fmt.Errorf("%w: locale %q", ErrNilRule, locale)
		}
		r.rules[normalizeLocale(locale)] = rule
	}
	return r, nil
}

// Category applies the rule registered for the locale, then the rule for its
// base language ("pt" for "pt-BR"), then the fallback provider.
func (r *Rules) Category(locale string, ops Operands) (Category, error) {
	norm := normalizeLocale(locale)
	if rule, ok := r.rules[norm]; ok {
		return rule(ops), nil
	}
	if base, _, found := strings.Cut(norm, "-"); found {
		if rule, ok := r.rules[base]; ok {
			return rule(ops), nil
		}
	}
	if r.fallback == nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	return r.fallback.Category(locale, ops)
}

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}
