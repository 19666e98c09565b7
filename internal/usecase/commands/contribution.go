package commands

import (
	"context"

	"wishlink/internal/domain/contribution"
	"wishlink/internal/domain/guest"
	"wishlink/internal/infra"
	"wishlink/internal/pkg/errs"
	"wishlink/internal/usecase/shared"

	"github.com/google/uuid"
)

type AddContributionRequest struct {
	AmountCents     float64
	ContributorName string
}

type AddContributionResult struct {
	ContributionID uuid.UUID
}

type ContributionCommands interface {
	AddContribution(ctx context.Context, itemID uuid.UUID, req AddContributionRequest, viewer guest.Identity) (*AddContributionResult, error)
}

type contributionUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewContributionUseCase(uow shared.UnitOfWork) ContributionCommands {
	return &contributionUseCaseImpl{uow: uow}
}

// AddContribution records a pledge toward an item. Over-funding is allowed;
// the displayed percentage is clamped at read time.
func (uc *contributionUseCaseImpl) AddContribution(ctx context.Context, itemID uuid.UUID, req AddContributionRequest, viewer guest.Identity) (*AddContributionResult, error) {
	if viewer.IsZero() {
		return nil, errs.ErrGuestTokenRequired
	}

	c, err := contribution.NewContribution(itemID, req.AmountCents, req.ContributorName, viewer)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidAmount)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().ItemByID(ctx, itemID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrItemNotFound
			}
			return derr
		}

		id, derr := tx.Contributions().Create(ctx, tx.DB(), c)
		if derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return errs.ErrItemNotFound
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &AddContributionResult{ContributionID: createdID}, nil
}
