//go:build unit

package item_test

import (
	"testing"

	"wishlink/internal/domain/guest"
	"wishlink/internal/domain/item"
	"wishlink/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(t *testing.T, raw string) guest.Identity {
	t.Helper()
	id, err := guest.NewIdentity(raw)
	require.NoError(t, err)
	return id
}

func TestToggleReservation(t *testing.T) {
	viewer := identity(t, "viewer-token")
	other := identity(t, "other-token")

	t.Run("claims a free item", func(t *testing.T) {
		it, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)

		holder := it.ToggleReservation(viewer)
		require.NotNil(t, holder)
		assert.True(t, holder.Equals(viewer))
	})

	t.Run("releases own reservation", func(t *testing.T) {
		it, err := builder.NewItemBuilder().WithReservedBy("viewer-token").BuildDomain()
		require.NoError(t, err)

		holder := it.ToggleReservation(viewer)
		assert.Nil(t, holder)
	})

	t.Run("takes over another guest's reservation", func(t *testing.T) {
		it, err := builder.NewItemBuilder().WithReservedBy("other-token").BuildDomain()
		require.NoError(t, err)

		holder := it.ToggleReservation(viewer)
		require.NotNil(t, holder)
		assert.True(t, holder.Equals(viewer))
		assert.False(t, holder.Equals(other))
	})

	t.Run("does not mutate the item", func(t *testing.T) {
		it, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)

		_ = it.ToggleReservation(viewer)
		assert.False(t, it.IsReserved())
	})
}

func TestReservationStateFor(t *testing.T) {
	viewer := identity(t, "viewer-token")

	cases := []struct {
		name       string
		reservedBy *string
		viewer     guest.Identity
		want       item.ReservationState
	}{
		{name: "open item", reservedBy: nil, viewer: viewer, want: item.ReservationOpen},
		{name: "reserved by viewer", reservedBy: ptr("viewer-token"), viewer: viewer, want: item.ReservationBySelf},
		{name: "reserved by another guest", reservedBy: ptr("other-token"), viewer: viewer, want: item.ReservationByOther},
		{name: "zero viewer never matches", reservedBy: ptr("other-token"), viewer: guest.Identity{}, want: item.ReservationByOther},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewItemBuilder()
			if tc.reservedBy != nil {
				b.WithReservedBy(*tc.reservedBy)
			}
			it, err := b.BuildDomain()
			require.NoError(t, err)

			assert.Equal(t, tc.want, it.ReservationStateFor(tc.viewer))
		})
	}
}

func ptr(s string) *string {
	return &s
}
