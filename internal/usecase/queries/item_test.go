//go:build unit

package queries_test

import (
	"context"
	"testing"

	"wishlink/internal/domain/guest"
	"wishlink/internal/domain/item"
	"wishlink/internal/usecase/queries"
	"wishlink/tests/common/builder"
	queriesmock "wishlink/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestItemQueries_ListByWishlist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wishlistID := uuid.New()
	viewer, err := guest.NewIdentity("viewer-token")
	require.NoError(t, err)

	funded := builder.NewItemBuilder().With(func(b *builder.ItemBuilder) {
		b.WishlistID = wishlistID
		b.PriceCents = 5000
	})
	untouched := builder.NewItemBuilder().With(func(b *builder.ItemBuilder) {
		b.WishlistID = wishlistID
		b.Name = "Tea Set"
		b.PriceCents = 8000
	})

	contribs := []*queries.ContributionRecord{
		builder.NewContributionBuilder().With(func(b *builder.ContributionBuilder) {
			b.ItemID = funded.ID
			b.AmountCents = 3000
		}).BuildRecord(),
		builder.NewContributionBuilder().With(func(b *builder.ContributionBuilder) {
			b.ItemID = funded.ID
			b.AmountCents = 2000
			b.ContributorName = "Bob"
			b.GuestID = "guest-token-2"
		}).BuildRecord(),
	}

	repo := queriesmock.NewMockItemReadStore(ctrl)
	repo.EXPECT().FindByWishlist(gomock.Any(), wishlistID).
		Return([]*queries.ItemRecord{funded.BuildRecord(), untouched.BuildRecord()}, nil).Times(1)
	repo.EXPECT().FindContributionsByItemIDs(gomock.Any(), []uuid.UUID{funded.ID, untouched.ID}).
		Return(contribs, nil).Times(1)

	q := queries.NewItemQueries(repo)
	views, err := q.ListByWishlist(context.Background(), wishlistID, viewer)

	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, int64(5000), views[0].FundedAmountCents)
	assert.Equal(t, float64(100), views[0].FundedPercent)
	assert.True(t, views[0].IsFunded)

	assert.Equal(t, int64(0), views[1].FundedAmountCents)
	assert.Equal(t, float64(0), views[1].FundedPercent)
	assert.False(t, views[1].IsFunded)
}

func TestItemQueries_ListByWishlist_ReservationStates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wishlistID := uuid.New()
	viewer, err := guest.NewIdentity("viewer-token")
	require.NoError(t, err)

	open := builder.NewItemBuilder().With(func(b *builder.ItemBuilder) {
		b.WishlistID = wishlistID
	})
	mine := builder.NewItemBuilder().With(func(b *builder.ItemBuilder) {
		b.WishlistID = wishlistID
	}).WithReservedBy("viewer-token")
	theirs := builder.NewItemBuilder().With(func(b *builder.ItemBuilder) {
		b.WishlistID = wishlistID
	}).WithReservedBy("someone-else")

	repo := queriesmock.NewMockItemReadStore(ctrl)
	repo.EXPECT().FindByWishlist(gomock.Any(), wishlistID).
		Return([]*queries.ItemRecord{open.BuildRecord(), mine.BuildRecord(), theirs.BuildRecord()}, nil).Times(1)
	repo.EXPECT().FindContributionsByItemIDs(gomock.Any(), gomock.Any()).
		Return(nil, nil).Times(1)

	q := queries.NewItemQueries(repo)
	views, err := q.ListByWishlist(context.Background(), wishlistID, viewer)

	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.Equal(t, string(item.ReservationOpen), views[0].ReservationState)
	assert.False(t, views[0].Reserved)

	assert.Equal(t, string(item.ReservationBySelf), views[1].ReservationState)
	assert.True(t, views[1].Reserved)

	assert.Equal(t, string(item.ReservationByOther), views[2].ReservationState)
	assert.True(t, views[2].Reserved)
}

func TestItemQueries_ListByWishlist_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wishlistID := uuid.New()
	repo := queriesmock.NewMockItemReadStore(ctrl)
	repo.EXPECT().FindByWishlist(gomock.Any(), wishlistID).
		Return(nil, nil).Times(1)

	q := queries.NewItemQueries(repo)
	views, err := q.ListByWishlist(context.Background(), wishlistID, guest.Identity{})

	require.NoError(t, err)
	assert.Empty(t, views)
	assert.NotNil(t, views)
}
