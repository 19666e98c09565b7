//go:build unit || e2e

package builder

import (
	"time"

	domcontribution "wishlink/internal/domain/contribution"
	domguest "wishlink/internal/domain/guest"
	reqdto "wishlink/internal/handler/dto/request"
	"wishlink/internal/usecase/queries"

	"github.com/google/uuid"
)

type ContributionBuilder struct {
	ID              uuid.UUID
	ItemID          uuid.UUID
	AmountCents     float64
	ContributorName string
	GuestID         string
	CreatedAt       time.Time
}

func NewContributionBuilder() *ContributionBuilder {
	return &ContributionBuilder{
		ID:              uuid.New(),
		ItemID:          uuid.New(),
		AmountCents:     1500,
		ContributorName: "Alice",
		GuestID:         "guest-token-1",
		CreatedAt:       time.Now(),
	}
}

func (b *ContributionBuilder) With(mutate func(*ContributionBuilder)) *ContributionBuilder {
	mutate(b)
	return b
}

func (b *ContributionBuilder) BuildDomain() (*domcontribution.Contribution, error) {
	guestID, err := domguest.NewIdentity(b.GuestID)
	if err != nil {
		return nil, err
	}
	return domcontribution.NewContribution(b.ItemID, b.AmountCents, b.ContributorName, guestID)
}

func (b *ContributionBuilder) BuildRecord() *queries.ContributionRecord {
	name := b.ContributorName
	if name == "" {
		name = domcontribution.DefaultContributorName
	}
	return &queries.ContributionRecord{
		ID:              b.ID,
		ItemID:          b.ItemID,
		AmountCents:     int64(b.AmountCents),
		ContributorName: name,
		GuestID:         b.GuestID,
		CreatedAt:       b.CreatedAt,
	}
}

func (b *ContributionBuilder) BuildAddRequestDTO() reqdto.AddContributionRequest {
	return reqdto.AddContributionRequest{
		AmountCents:     b.AmountCents,
		ContributorName: b.ContributorName,
	}
}
