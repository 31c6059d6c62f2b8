package commission

import (
	"strings"

	"github.com/shopspring/decimal"
)

// The commission policies are data, not code branches: every employee rule
// is a Rule value, so onboarding a dentist with a new split means adding a
// table entry. Tier order is significant and preserved exactly; several
// service labels overlap (e.g. "braces installation" vs "braces") and the
// first match wins.

type PayoutKind string

const (
	// PayoutPercentage pays a fixed share of the treatment amount.
	PayoutPercentage PayoutKind = "percentage"
	// PayoutFlat pays a fixed amount regardless of the treatment amount.
	PayoutFlat PayoutKind = "flat"
	// PayoutBracketed pays a fixed amount selected by treatment-amount
	// threshold; below the lowest threshold the payout is zero.
	PayoutBracketed PayoutKind = "bracketed"
)

// Bracket pays Amount when the treatment amount reaches MinAmount.
type Bracket struct {
	MinAmount decimal.Decimal
	Amount    decimal.Decimal
}

// Payout is a tagged variant; Kind selects which field applies.
type Payout struct {
	Kind     PayoutKind
	Rate     decimal.Decimal // percentage, as a fraction (0.40 = 40%)
	Amount   decimal.Decimal // flat
	Brackets []Bracket       // bracketed, highest threshold first
}

// Apply computes the payout for a treatment amount, along with the display
// label stored on the record ("40%", "flat 50"). The label is informational
// only and never feeds back into computation.
func (p Payout) Apply(amount decimal.Decimal) (decimal.Decimal, string) {
	switch p.Kind {
	case PayoutPercentage:
		return amount.Mul(p.Rate), p.Rate.Shift(2).String() + "%"
	case PayoutFlat:
		return p.Amount, "flat " + p.Amount.String()
	case PayoutBracketed:
		for _, b := range p.Brackets {
			if amount.GreaterThanOrEqual(b.MinAmount) {
				return b.Amount, "flat " + b.Amount.String()
			}
		}
		return decimal.Zero, "flat 0"
	default:
		return decimal.Zero, ""
	}
}

// Tier binds a payout to case-insensitive substring predicates over the
// service label.
type Tier struct {
	Keywords []string
	Payout   Payout
}

// Rule is an ordered tier list with an optional fallback. A Rule with no
// tiers and no fallback pays nothing; that is how the practice owner is
// modeled.
type Rule struct {
	Tiers    []Tier
	Fallback *Payout
}

// Evaluate matches the service label against the tiers in declared order;
// the first matching keyword wins. With no match, the fallback applies, or
// the payout is zero.
func (r Rule) Evaluate(service string, amount decimal.Decimal) (decimal.Decimal, string) {
	label := strings.ToLower(service)
	for _, tier := range r.Tiers {
		for _, kw := range tier.Keywords {
			if strings.Contains(label, kw) {
				return tier.Payout.Apply(amount)
			}
		}
	}
	if r.Fallback != nil {
		return r.Fallback.Apply(amount)
	}
	return decimal.Zero, ""
}

// RuleBook holds the per-dentist rules and the shared staff rule.
type RuleBook struct {
	Dentists map[string]Rule
	Staff    Rule
}

// DentistCommission looks up the dentist's rule; an unknown dentist earns
// nothing rather than erroring, matching the practice's historical behavior.
func (b RuleBook) DentistCommission(dentistID, service string, amount decimal.Decimal) (decimal.Decimal, string) {
	rule, ok := b.Dentists[dentistID]
	if !ok {
		return decimal.Zero, ""
	}
	return rule.Evaluate(service, amount)
}

// StaffCommission is identity-independent: every staff member shares one
// service-keyed rule.
func (b RuleBook) StaffCommission(service string, amount decimal.Decimal) (decimal.Decimal, string) {
	return b.Staff.Evaluate(service, amount)
}

func percentage(rate string) Payout {
	return Payout{Kind: PayoutPercentage, Rate: decimal.RequireFromString(rate)}
}

func flat(amount int64) Payout {
	return Payout{Kind: PayoutFlat, Amount: decimal.NewFromInt(amount)}
}

func bracketed(brackets ...Bracket) Payout {
	return Payout{Kind: PayoutBracketed, Brackets: brackets}
}

func bracket(minAmount, amount int64) Bracket {
	return Bracket{MinAmount: decimal.NewFromInt(minAmount), Amount: decimal.NewFromInt(amount)}
}

func payoutPtr(p Payout) *Payout {
	return &p
}

// DefaultRuleBook returns the clinic's current commission policies, keyed by
// roster employee id.
func DefaultRuleBook() RuleBook {
	return RuleBook{
		Dentists: defaultDentistRules(),
		Staff:    defaultStaffRule(),
	}
}

func defaultDentistRules() map[string]Rule {
	return map[string]Rule{
		// The practice owner draws no commission.
		"1": {},

		// Flat-percentage associates.
		"2": {Fallback: payoutPtr(percentage("0.50"))},
		"3": {Fallback: payoutPtr(percentage("0.40"))},
		"4": {Fallback: payoutPtr(percentage("0.45"))},

		// Tiered associates, keyed by service label.
		"5": {
			Tiers: []Tier{
				{Keywords: []string{"surgical"}, Payout: percentage("0.35")},
				{Keywords: []string{"root canal", "crown"}, Payout: percentage("0.30")},
				{Keywords: []string{"extraction"}, Payout: percentage("0.15")},
			},
			Fallback: payoutPtr(percentage("0.10")),
		},
		"6": {
			Tiers: []Tier{
				{Keywords: []string{"new", "installation"}, Payout: percentage("0.20")},
				{Keywords: []string{"xray"}, Payout: flat(50)},
			},
			Fallback: payoutPtr(percentage("0.10")),
		},
		"7": {
			Tiers: []Tier{
				{Keywords: []string{"root canal", "surgery", "crown"}, Payout: percentage("0.20")},
				{Keywords: []string{"xray"}, Payout: flat(50)},
			},
			Fallback: payoutPtr(percentage("0.15")),
		},
		"8": {
			Tiers: []Tier{
				{Keywords: []string{"crown", "endo", "surgery"}, Payout: percentage("0.20")},
				{Keywords: []string{"xray"}, Payout: flat(50)},
			},
			Fallback: payoutPtr(percentage("0.10")),
		},
	}
}

func defaultStaffRule() Rule {
	return Rule{
		Tiers: []Tier{
			{Keywords: []string{"xray"}, Payout: flat(50)},
			{Keywords: []string{"fluoride"}, Payout: bracketed(
				bracket(1500, 150),
				bracket(1000, 100),
			)},
			{Keywords: []string{"tooth mousse"}, Payout: flat(200)},
			{Keywords: []string{"airflow"}, Payout: flat(150)},
			{Keywords: []string{"whitening"}, Payout: flat(1000)},
			// "braces install" also covers "braces installation"; it must
			// sit above the generic "braces" tier.
			{Keywords: []string{"braces install"}, Payout: flat(500)},
			{Keywords: []string{"braces binding", "braces"}, Payout: bracketed(
				bracket(28000, 1500),
				bracket(10000, 1000),
			)},
			{Keywords: []string{"binding fee", "oral rehab"}, Payout: bracketed(
				bracket(5000, 500),
				bracket(3000, 300),
			)},
		},
	}
}
