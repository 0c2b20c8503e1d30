package commands

import (
	"context"

	"pigeonpost/internal/core/domain/model/letter"
	"pigeonpost/internal/pkg/errs"
)

// CreateLetterCommandHandler queues new letters.
// Resolves both clients and the carrier inside one transaction and enforces
// the carrier availability policy before persisting.
type CreateLetterCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateLetterCommandHandler creates a handler for letter creation.
func NewCreateLetterCommandHandler(uowFactory UoWFactory) CreateLetterCommandHandler {
	return CreateLetterCommandHandler{uowFactory: uowFactory}
}

// Handle queues the letter and returns it with its assigned identity.
// Missing participants surface as ObjectNotFoundErrors; an unavailable
// carrier (inactive or retired) fails with a ConflictError.
func (h CreateLetterCommandHandler) Handle(ctx context.Context, cmd CreateLetterCommand) (*letter.Letter, error) {
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

	if _, err := uow.ClientRepository().Get(ctx, cmd.SenderID()); err != nil {
		return nil, err
	}
	if _, err := uow.ClientRepository().Get(ctx, cmd.RecipientID()); err != nil {
		return nil, err
	}

	assignee, err := uow.CarrierRepository().Get(ctx, cmd.CarrierID())
	if err != nil {
		return nil, err
	}
	if !assignee.IsAvailable() {
		return nil, errs.NewConflictError("carrier is not available for assignment")
	}

	aggregate, err := letter.NewLetter(cmd.Message(), cmd.SenderID(), cmd.RecipientID(), cmd.CarrierID())
	if err != nil {
		return nil, err
	}

	saved, err := uow.LetterRepository().Add(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return saved, nil
}
