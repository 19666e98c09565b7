//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"wishlink/internal/infra"
	"wishlink/internal/pkg/clock"
	"wishlink/internal/pkg/errs"
	"wishlink/internal/usecase/queries"
	"wishlink/tests/common/builder"
	queriesmock "wishlink/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWishlistQueries_GetByID(t *testing.T) {
	fixedNow := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name            string
		eventDate       *time.Time
		wantEventPassed bool
	}{
		{
			name:            "event yesterday is passed",
			eventDate:       datePtr(2026, 3, 14),
			wantEventPassed: true,
		},
		{
			name:            "event today is not passed",
			eventDate:       datePtr(2026, 3, 15),
			wantEventPassed: false,
		},
		{
			name:            "event tomorrow is not passed",
			eventDate:       datePtr(2026, 3, 16),
			wantEventPassed: false,
		},
		{
			name:            "no event date is never passed",
			eventDate:       nil,
			wantEventPassed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			b := builder.NewWishlistBuilder()
			b.EventDate = tt.eventDate
			view := b.BuildView()

			repo := queriesmock.NewMockWishlistReadStore(ctrl)
			repo.EXPECT().FindByID(gomock.Any(), b.ID).Return(view, nil).Times(1)

			q := queries.NewWishlistQueries(repo, clock.NewMockClock(fixedNow))
			got, err := q.GetByID(context.Background(), b.ID)

			require.NoError(t, err)
			assert.Equal(t, b.ID, got.ID)
			assert.Equal(t, tt.wantEventPassed, got.EventPassed)
		})
	}
}

func TestWishlistQueries_GetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo := queriesmock.NewMockWishlistReadStore(ctrl)
	repo.EXPECT().FindByID(gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("wishlist not found", nil, infra.KindNotFound)).Times(1)

	q := queries.NewWishlistQueries(repo, clock.NewMockClock(time.Now()))
	_, err := q.GetByID(context.Background(), id)

	require.ErrorIs(t, err, errs.ErrWishlistNotFound)
}

func TestWishlistQueries_ListByOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixedNow := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	ownerID := uuid.New()

	passed := builder.NewWishlistBuilder().With(func(b *builder.WishlistBuilder) {
		b.OwnerID = &ownerID
		b.EventDate = datePtr(2026, 3, 1)
	})
	upcoming := builder.NewWishlistBuilder().With(func(b *builder.WishlistBuilder) {
		b.OwnerID = &ownerID
		b.EventDate = datePtr(2026, 4, 1)
	})

	repo := queriesmock.NewMockWishlistReadStore(ctrl)
	repo.EXPECT().FindByOwner(gomock.Any(), ownerID).
		Return([]*queries.WishlistView{passed.BuildView(), upcoming.BuildView()}, nil).Times(1)

	q := queries.NewWishlistQueries(repo, clock.NewMockClock(fixedNow))
	got, err := q.ListByOwner(context.Background(), ownerID)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].EventPassed)
	assert.False(t, got[1].EventPassed)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
