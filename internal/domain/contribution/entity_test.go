//go:build unit

package contribution_test

import (
	"math"
	"testing"

	"wishlink/internal/domain/contribution"
	"wishlink/internal/domain/guest"
	"wishlink/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAmount(t *testing.T) {
	cases := []struct {
		name  string
		cents float64
		want  int64
		errIs error
	}{
		{name: "whole amount", cents: 1500, want: 1500},
		{name: "fractional amount rounds", cents: 1500.6, want: 1501},
		{name: "zero", cents: 0, errIs: contribution.ErrInvalidAmount},
		{name: "negative", cents: -100, errIs: contribution.ErrInvalidAmount},
		{name: "NaN", cents: math.NaN(), errIs: contribution.ErrInvalidAmount},
		{name: "positive infinity", cents: math.Inf(1), errIs: contribution.ErrInvalidAmount},
		{name: "negative infinity", cents: math.Inf(-1), errIs: contribution.ErrInvalidAmount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := contribution.NewAmount(tc.cents)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, a.Cents())
		})
	}
}

func TestNewContribution(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		c, err := builder.NewContributionBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, int64(1500), c.Amount().Cents())
		assert.Equal(t, "Alice", c.ContributorName())
		assert.Equal(t, "guest-token-1", c.GuestID().Value())
	})

	t.Run("blank contributor name falls back to default", func(t *testing.T) {
		c, err := builder.NewContributionBuilder().
			With(func(b *builder.ContributionBuilder) { b.ContributorName = "   " }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, contribution.DefaultContributorName, c.ContributorName())
	})

	t.Run("requires a guest identity", func(t *testing.T) {
		guestID := guest.Identity{}
		_, err := contribution.NewContribution(builder.NewContributionBuilder().ItemID, 1500, "Alice", guestID)
		assert.ErrorIs(t, err, contribution.ErrNoGuestID)
	})

	t.Run("rejects invalid amount", func(t *testing.T) {
		_, err := builder.NewContributionBuilder().
			With(func(b *builder.ContributionBuilder) { b.AmountCents = -5 }).
			BuildDomain()
		assert.ErrorIs(t, err, contribution.ErrInvalidAmount)
	})
}
