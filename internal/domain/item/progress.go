package item

import (
	"errors"

	"wishlink/internal/domain/contribution"
)

// ErrInvalidItemState is returned when progress is requested for an item whose
// target price is not positive. Dividing by a zero price must never silently
// produce an infinite percentage.
var ErrInvalidItemState = errors.New("invalid item state: non-positive target price")

// Progress is the funding state derived from an item's contribution set.
type Progress struct {
	FundedAmount  int64
	FundedPercent float64
	IsFunded      bool
}

// ComputeProgress sums the contribution amounts and derives the funding
// percentage, clamped to [0,100]. Contributions are assumed to belong to the
// item; a mismatched set is a caller bug, not a recoverable condition.
func (i *Item) ComputeProgress(contributions []*contribution.Contribution) (Progress, error) {
	return ComputeProgress(i.price, contributions)
}

func ComputeProgress(price Money, contributions []*contribution.Contribution) (Progress, error) {
	if price.Cents() <= 0 {
		return Progress{}, ErrInvalidItemState
	}

	var funded int64
	for _, c := range contributions {
		funded += c.Amount().Cents()
	}

	percent := float64(funded) / float64(price.Cents()) * 100
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}

	return Progress{
		FundedAmount:  funded,
		FundedPercent: percent,
		IsFunded:      percent >= 100,
	}, nil
}
