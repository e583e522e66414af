// Package plural selects CLDR plural categories for numbers.
//
// A Provider maps a locale code and the CLDR operands of a number to one of
// the six category labels (zero, one, two, few, many, other). CLDR returns the
// provider built on the rule tables in golang.org/x/text; NewRules layers
// hand-written per-locale rules on top of any provider.
//
//	ops, _ := plural.NewOperands(21)
//	cat, _ := plural.CLDR().Category("ru", ops) // plural.One
package plural
