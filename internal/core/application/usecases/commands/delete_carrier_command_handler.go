package commands

import (
	"context"

	"pigeonpost/internal/pkg/errs"
)

// DeleteCarrierCommandHandler soft-deletes carriers. The row survives for
// referential history; only the active flag drops. Carriers that letters still
// reference cannot be deleted at all.
type DeleteCarrierCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteCarrierCommandHandler creates a handler for carrier deletion.
func NewDeleteCarrierCommandHandler(uowFactory UoWFactory) DeleteCarrierCommandHandler {
	return DeleteCarrierCommandHandler{uowFactory: uowFactory}
}

// Handle deactivates the carrier.
// Fails with a ConflictError when any letter references the carrier.
func (h DeleteCarrierCommandHandler) Handle(ctx context.Context, cmd DeleteCarrierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.CarrierRepository().Get(ctx, cmd.CarrierID())
	if err != nil {
		return err
	}

	count, err := uow.LetterRepository().CountByCarrier(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.NewConflictError("carrier is referenced by existing letters")
	}

	aggregate.Deactivate()

	if err := uow.CarrierRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
