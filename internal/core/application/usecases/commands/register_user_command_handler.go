package commands

import (
	"context"
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
)

// RegisterUserCommandHandler creates accounts with unique usernames.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle hashes the password and stores the user. A taken username is a
// ValueIsInvalidError.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	u, err := user.NewUser(cmd.UserID(), cmd.Username(), cmd.Email(), cmd.Password(), cmd.DeliveryAddress(), cmd.IsStaff())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	_, err = repo.GetByUsername(ctx, u.Username())
	switch {
	case err == nil:
		return errs.NewValueIsInvalidErrorWithCause("username", fmt.Errorf("%q is already taken", u.Username()))
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = repo.Add(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
