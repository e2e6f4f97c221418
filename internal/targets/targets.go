// Package targets derives quarterly and monthly commission targets from
// a stored annual figure. Nothing here is persisted: the derived numbers
// are recomputed on every read so they cannot drift from the annual one.
package targets

import "github.com/shopspring/decimal"

// Targets are the figures derived from an annual commission target.
type Targets struct {
	Quarterly decimal.Decimal
	Monthly   decimal.Decimal
}

// Derive splits an annual target into quarterly (annual/4) and monthly
// (annual/12) figures, each rounded to the nearest whole amount with
// ties away from zero. A zero annual target yields zeros. Negative
// inputs are not rejected; validating the sign is the caller's job.
func Derive(annual decimal.Decimal) Targets {
	return Targets{
		Quarterly: annual.DivRound(decimal.NewFromInt(4), 0),
		Monthly:   annual.DivRound(decimal.NewFromInt(12), 0),
	}
}
