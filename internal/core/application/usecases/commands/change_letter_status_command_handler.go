package commands

import (
	"context"
	"time"

	"pigeonpost/internal/core/domain/model/letter"
)

// ChangeLetterStatusCommandHandler moves letters along the lifecycle graph.
// The aggregate owns the transition rules and the timestamp side effects;
// the handler supplies the clock reading and persists the result atomically.
type ChangeLetterStatusCommandHandler struct {
	uowFactory LetterUoWFactory
}

// NewChangeLetterStatusCommandHandler creates a handler for status changes.
func NewChangeLetterStatusCommandHandler(uowFactory LetterUoWFactory) ChangeLetterStatusCommandHandler {
	return ChangeLetterStatusCommandHandler{uowFactory: uowFactory}
}

// Handle applies the transition and returns the updated letter.
// Illegal moves surface as InvalidTransitionErrors or, for delivered letters,
// IllegalStateErrors, leaving the row untouched.
func (h ChangeLetterStatusCommandHandler) Handle(ctx context.Context, cmd ChangeLetterStatusCommand) (*letter.Letter, error) {
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

	if err := aggregate.ChangeStatus(cmd.Status(), time.Now().UTC()); err != nil {
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
