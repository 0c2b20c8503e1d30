package commands

import (
	"context"
)

// DeleteLetterCommandHandler removes letters that are still queued.
// Letters that have been dispatched or delivered are part of the historical
// record and cannot be removed.
type DeleteLetterCommandHandler struct {
	uowFactory LetterUoWFactory
}

// NewDeleteLetterCommandHandler creates a handler for letter deletion.
func NewDeleteLetterCommandHandler(uowFactory LetterUoWFactory) DeleteLetterCommandHandler {
	return DeleteLetterCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the letter row.
// Fails with an IllegalStateError when the letter has left the queue.
func (h DeleteLetterCommandHandler) Handle(ctx context.Context, cmd DeleteLetterCommand) error {
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

	repo := uow.LetterRepository()

	aggregate, err := repo.Get(ctx, cmd.LetterID())
	if err != nil {
		return err
	}

	if err := aggregate.EnsureDeletable(); err != nil {
		return err
	}

	if err := repo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
