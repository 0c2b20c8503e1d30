package commands

import (
	"context"

	"pigeonpost/internal/pkg/errs"
)

// DeleteClientCommandHandler removes clients. Unlike carriers, a client row is
// hard-deleted, but only when no letter references it as sender or recipient.
type DeleteClientCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteClientCommandHandler creates a handler for client deletion.
func NewDeleteClientCommandHandler(uowFactory UoWFactory) DeleteClientCommandHandler {
	return DeleteClientCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the client row.
// Fails with a ConflictError when any letter references the client.
func (h DeleteClientCommandHandler) Handle(ctx context.Context, cmd DeleteClientCommand) error {
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

	aggregate, err := uow.ClientRepository().Get(ctx, cmd.ClientID())
	if err != nil {
		return err
	}

	count, err := uow.LetterRepository().CountByClient(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.NewConflictError("client is referenced by existing letters")
	}

	if err := uow.ClientRepository().Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
