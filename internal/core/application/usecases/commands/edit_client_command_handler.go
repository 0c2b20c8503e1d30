package commands

import (
	"context"
	"errors"

	"pigeonpost/internal/core/domain/model/client"
	"pigeonpost/internal/pkg/errs"
)

// EditClientCommandHandler applies partial updates to a client's profile.
type EditClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewEditClientCommandHandler creates a handler for client edits.
func NewEditClientCommandHandler(uowFactory ClientUoWFactory) EditClientCommandHandler {
	return EditClientCommandHandler{uowFactory: uowFactory}
}

// Handle loads the client, applies the provided fields and persists the result.
// An email change is checked for uniqueness against other clients.
func (h EditClientCommandHandler) Handle(ctx context.Context, cmd EditClientCommand) (*client.Client, error) {
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

	repo := uow.ClientRepository()

	aggregate, err := repo.Get(ctx, cmd.ClientID())
	if err != nil {
		return nil, err
	}

	if cmd.Name() != nil {
		if err := aggregate.SetName(*cmd.Name()); err != nil {
			return nil, err
		}
	}
	if cmd.Email() != nil {
		if err := h.ensureEmailFree(ctx, uow, *cmd.Email(), aggregate.ID()); err != nil {
			return nil, err
		}
		if err := aggregate.SetEmail(*cmd.Email()); err != nil {
			return nil, err
		}
	}
	if cmd.BirthDate() != nil {
		if err := aggregate.SetBirthDate(*cmd.BirthDate()); err != nil {
			return nil, err
		}
	}
	if cmd.Address() != nil {
		if err := aggregate.SetAddress(*cmd.Address()); err != nil {
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

func (h EditClientCommandHandler) ensureEmailFree(ctx context.Context, uow ClientUoW, email string, selfID int64) error {
	existing, err := uow.ClientRepository().GetByEmail(ctx, client.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}
	if existing.ID() != selfID {
		return errs.NewConflictError("email is already registered")
	}
	return nil
}
