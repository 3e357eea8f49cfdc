// Package matching implements the fuzzy transaction matcher used by both
// recurring-expense reconciliation and bank-sync deduplication. Bank feeds
// carry no identifier stable across systems, so "same real-world event" is
// decided heuristically from amount proximity, date proximity, and
// description text.
package matching

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-hub/backend/internal/domain/entity"
	"github.com/finance-hub/backend/internal/domain/valueobject"
)

const (
	// DefaultAmountTolerance is the default absolute amount tolerance in
	// currency units.
	DefaultAmountTolerance = 12.0
	// DefaultDateWindowDays is the default date window in days on each
	// side of the target date.
	DefaultDateWindowDays = 5

	// minTokenLength is the shortest reference-name token considered in
	// the fallback description match. Shorter tokens ("AB", "the") match
	// too much noise.
	minTokenLength = 4

	// verifiedExternalIDLength is the threshold above which an external
	// identifier is treated as a verified bank-side UUID. Such
	// transactions are already linked to a feed entry and must not be
	// re-linked by dedup.
	verifiedExternalIDLength = 20
)

// Target describes the occurrence a caller is looking for.
type Target struct {
	Amount decimal.Decimal // Expected magnitude
	Date   time.Time       // Expected occurrence date
	// DescriptionPattern, when non-empty, overrides name-based matching.
	DescriptionPattern string
	// ReferenceName is the human label of the obligation (e.g. the
	// recurring expense name) used for description matching when no
	// pattern is set.
	ReferenceName string
}

// Tolerances parameterizes the matcher.
type Tolerances struct {
	AmountAbsolute decimal.Decimal
	DateWindowDays int
	// Exclude, when set, removes transactions from consideration before
	// any filter runs. Used by bank-sync dedup to skip already-linked
	// transactions.
	Exclude func(*entity.Transaction) bool
}

// DefaultTolerances returns the standard reconciliation tolerances.
func DefaultTolerances() Tolerances {
	return Tolerances{
		AmountAbsolute: decimal.NewFromFloat(DefaultAmountTolerance),
		DateWindowDays: DefaultDateWindowDays,
	}
}

// Candidate is a transaction that passed all filters, annotated with its
// distance from the target.
type Candidate struct {
	Transaction  *entity.Transaction
	DateDistance int             // Days between transaction and target date
	AmountDelta  decimal.Decimal // | |amount| - target amount |
}

// FindCandidates scans transactions for plausible matches of target and
// returns them ordered closest-date-first. The input slice is never
// mutated; the result is deterministic for identical inputs.
//
// A transaction is a candidate when all three filters pass:
//   - amount: | |txn.Amount| - target.Amount | < tolerances.AmountAbsolute
//   - date: within [target.Date - N days, target.Date + N days] inclusive
//   - description: see matchesDescription
func FindCandidates(transactions []*entity.Transaction, target Target, tolerances Tolerances) []Candidate {
	var candidates []Candidate

	for _, txn := range transactions {
		if tolerances.Exclude != nil && tolerances.Exclude(txn) {
			continue
		}

		// Direction (income/expense) is ignored on purpose: some banks
		// report recurring debits with flipped signs.
		amountDelta := txn.Amount.Abs().Sub(target.Amount).Abs()
		if !amountDelta.LessThan(tolerances.AmountAbsolute) {
			continue
		}

		distance := dateDistanceDays(txn.Date, target.Date)
		if distance > tolerances.DateWindowDays {
			continue
		}

		if !matchesDescription(txn.Description, target) {
			continue
		}

		candidates = append(candidates, Candidate{
			Transaction:  txn,
			DateDistance: distance,
			AmountDelta:  amountDelta,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DateDistance < candidates[j].DateDistance
	})

	return candidates
}

// matchesDescription applies the description filter:
//
// With a pattern set, pattern must be a case-insensitive substring of the
// description. Without one, the reference name must be a substring, falling
// back to any whitespace token of the name longer than three characters
// being one. A name with no such token never matches via the fallback.
func matchesDescription(description string, target Target) bool {
	desc := strings.ToLower(description)

	if target.DescriptionPattern != "" {
		return strings.Contains(desc, strings.ToLower(target.DescriptionPattern))
	}

	name := strings.ToLower(target.ReferenceName)
	if strings.Contains(desc, name) {
		return true
	}

	for _, token := range strings.Fields(name) {
		if len(token) >= minTokenLength && strings.Contains(desc, token) {
			return true
		}
	}
	return false
}

// ExcludeVerifiedExternal is the exclusion predicate used by bank-sync
// dedup: transactions already carrying a verified bank-side identifier are
// not eligible for re-linking.
func ExcludeVerifiedExternal(txn *entity.Transaction) bool {
	return len(txn.ExternalID) > verifiedExternalIDLength
}

// dateDistanceDays returns the absolute distance between two dates in whole
// days at day granularity.
func dateDistanceDays(a, b time.Time) int {
	d := valueobject.TruncateToDay(a).Sub(valueobject.TruncateToDay(b))
	days := int(d.Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}
