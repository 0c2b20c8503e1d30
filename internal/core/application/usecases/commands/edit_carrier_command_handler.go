package commands

import (
	"context"
	"errors"

	"pigeonpost/internal/core/domain/model/carrier"
	"pigeonpost/internal/pkg/errs"
)

// EditCarrierCommandHandler applies partial updates to a carrier's profile.
// The aggregate rejects edits once the carrier is retired.
type EditCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewEditCarrierCommandHandler creates a handler for carrier edits.
func NewEditCarrierCommandHandler(uowFactory CarrierUoWFactory) EditCarrierCommandHandler {
	return EditCarrierCommandHandler{uowFactory: uowFactory}
}

// Handle loads the carrier, applies the provided fields and persists the result.
// A nickname change is checked for uniqueness against other carriers.
func (h EditCarrierCommandHandler) Handle(ctx context.Context, cmd EditCarrierCommand) (*carrier.Carrier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CarrierRepository()

	aggregate, err := repo.Get(ctx, cmd.CarrierID())
	if err != nil {
		return nil, err
	}

	if cmd.Nickname() != nil {
		if err := h.ensureNicknameFree(ctx, uow, *cmd.Nickname(), aggregate.ID()); err != nil {
			return nil, err
		}
		if err := aggregate.Rename(*cmd.Nickname()); err != nil {
			return nil, err
		}
	}
	if cmd.Speed() != nil {
		if err := aggregate.SetSpeed(*cmd.Speed()); err != nil {
			return nil, err
		}
	}
	if cmd.BirthDate() != nil {
		if err := aggregate.SetBirthDate(*cmd.BirthDate()); err != nil {
			return nil, err
		}
	}
	if cmd.PhotoURL() != nil {
		if err := aggregate.SetPhotoURL(cmd.PhotoURL()); err != nil {
			return nil, err
		}
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h EditCarrierCommandHandler) ensureNicknameFree(ctx context.Context, uow CarrierUoW, nickname string, selfID int64) error {
	existing, err := uow.CarrierRepository().GetByNickname(ctx, nickname)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}
	if existing.ID() != selfID {
		return errs.NewConflictError("nickname is already taken")
	}
	return nil
}
