package commands

import (
	"context"

	"pigeonpost/internal/core/domain/model/carrier"
)

// RetireCarrierCommandHandler retires carriers. Retirement is one-way: the
// aggregate drops the active flag and freezes every other field for good.
type RetireCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewRetireCarrierCommandHandler creates a handler for carrier retirement.
func NewRetireCarrierCommandHandler(uowFactory CarrierUoWFactory) RetireCarrierCommandHandler {
	return RetireCarrierCommandHandler{uowFactory: uowFactory}
}

// Handle retires the carrier and returns its frozen state.
// Retiring an already retired carrier fails with an IllegalStateError.
func (h RetireCarrierCommandHandler) Handle(ctx context.Context, cmd RetireCarrierCommand) (*carrier.Carrier, error) {
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

	if err := aggregate.Retire(); err != nil {
		return nil, err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
