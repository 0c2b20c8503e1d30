package commands

import (
	"context"
	"errors"

	"pigeonpost/internal/core/domain/model/carrier"
	"pigeonpost/internal/pkg/errs"
)

// CreateCarrierCommandHandler registers new carriers.
// Enforces nickname uniqueness against the store before persisting.
type CreateCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewCreateCarrierCommandHandler creates a handler for carrier registration.
func NewCreateCarrierCommandHandler(uowFactory CarrierUoWFactory) CreateCarrierCommandHandler {
	return CreateCarrierCommandHandler{uowFactory: uowFactory}
}

// Handle registers the carrier and returns it with its assigned identity.
// A duplicate nickname fails with a ConflictError.
func (h CreateCarrierCommandHandler) Handle(ctx context.Context, cmd CreateCarrierCommand) (*carrier.Carrier, error) {
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

	if _, err := repo.GetByNickname(ctx, cmd.Nickname()); err == nil {
		return nil, errs.NewConflictError("nickname is already taken")
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	aggregate, err := carrier.NewCarrier(cmd.Nickname(), cmd.Speed(), cmd.BirthDate(), cmd.PhotoURL())
	if err != nil {
		return nil, err
	}

	saved, err := repo.Add(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return saved, nil
}
