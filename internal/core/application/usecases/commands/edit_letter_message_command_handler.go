package commands

import (
	"context"

	"pigeonpost/internal/core/domain/model/letter"
)

// EditLetterMessageCommandHandler rewrites letter messages.
// The aggregate only allows edits while the letter is still queued.
type EditLetterMessageCommandHandler struct {
	uowFactory LetterUoWFactory
}

// NewEditLetterMessageCommandHandler creates a handler for message edits.
func NewEditLetterMessageCommandHandler(uowFactory LetterUoWFactory) EditLetterMessageCommandHandler {
	return EditLetterMessageCommandHandler{uowFactory: uowFactory}
}

// Handle replaces the message and returns the updated letter.
// Fails with an IllegalStateError once the letter has left the queue.
func (h EditLetterMessageCommandHandler) Handle(ctx context.Context, cmd EditLetterMessageCommand) (*letter.Letter, error) {
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

	repo := uow.LetterRepository()

	aggregate, err := repo.Get(ctx, cmd.LetterID())
	if err != nil {
		return nil, err
	}

	if err := aggregate.EditMessage(cmd.Message()); err != nil {
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
