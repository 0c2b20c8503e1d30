package commands

import (
	"context"
	"errors"

	"pigeonpost/internal/core/domain/model/client"
	"pigeonpost/internal/pkg/errs"
)

// CreateClientCommandHandler registers new clients.
// Enforces email uniqueness against the store before persisting.
type CreateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewCreateClientCommandHandler creates a handler for client registration.
func NewCreateClientCommandHandler(uowFactory ClientUoWFactory) CreateClientCommandHandler {
	return CreateClientCommandHandler{uowFactory: uowFactory}
}

// Handle registers the client and returns it with its assigned identity.
// A duplicate email fails with a ConflictError. The lookup uses the
// normalized form, so case variants of the same address collide.
func (h CreateClientCommandHandler) Handle(ctx context.Context, cmd CreateClientCommand) (*client.Client, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := client.NewClient(cmd.Name(), cmd.Email(), cmd.BirthDate(), cmd.Address())
	if err != nil {
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

	if _, err := repo.GetByEmail(ctx, aggregate.Email()); err == nil {
		return nil, errs.NewConflictError("email is already registered")
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
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
