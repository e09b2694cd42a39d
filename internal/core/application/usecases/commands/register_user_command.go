package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand creates an account. Public sign-up always registers
// customers; staff accounts are created by the administrator bootstrap.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID          kernel.UUID
	username        string
	email           string
	password        string
	deliveryAddress string
	isStaff         bool

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(
	userID kernel.UUID,
	username, email, password, deliveryAddress string,
	isStaff bool,
) (RegisterUserCommand, error) {
	var usernameErr, passwordErr error
	if username == "" {
		usernameErr = errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}

	if err := errors.Join(userID.Validate(), usernameErr, passwordErr); err != nil {
		return RegisterUserCommand{}, err
	}

	return RegisterUserCommand{
		userID:          userID,
		username:        username,
		email:           email,
		password:        password,
		deliveryAddress: deliveryAddress,
		isStaff:         isStaff,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) UserID() kernel.UUID     { return c.userID }
func (c RegisterUserCommand) Username() string        { return c.username }
func (c RegisterUserCommand) Email() string           { return c.email }
func (c RegisterUserCommand) Password() string        { return c.password }
func (c RegisterUserCommand) DeliveryAddress() string { return c.deliveryAddress }
func (c RegisterUserCommand) IsStaff() bool           { return c.isStaff }
