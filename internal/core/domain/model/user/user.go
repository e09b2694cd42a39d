package user

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
)

var (
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	usernamePattern = regexp.MustCompile(`^[\w.@+-]{1,150}$`)
)

// User is a registered account.
type User struct {
	id              kernel.UUID
	username        string
	email           string
	passwordHash    string
	deliveryAddress string
	isStaff         bool
	createdAt       time.Time

	isConstructed bool
}

// NewUser registers a customer (or a staff member when isStaff is set) and
// hashes password with bcrypt.
func NewUser(id kernel.UUID, username, email, password, deliveryAddress string, isStaff bool) (*User, error) {
	hash, hashErr := hashPassword(password)

	u, err := restore(id, username, email, hash, deliveryAddress, isStaff, time.Now().UTC())
	if err = errors.Join(hashErr, err); err != nil {
		return nil, err
	}
	return u, nil
}

// RestoreUser rebuilds a user loaded from persistence.
func RestoreUser(
	id kernel.UUID,
	username, email, passwordHash, deliveryAddress string,
	isStaff bool,
	createdAt time.Time,
) (*User, error) {
	var hashErr error
	if passwordHash == "" {
		hashErr = errs.NewValueIsRequiredError("passwordHash")
	}
	u, err := restore(id, username, email, passwordHash, deliveryAddress, isStaff, createdAt)
	if err = errors.Join(hashErr, err); err != nil {
		return nil, err
	}
	return u, nil
}

func restore(
	id kernel.UUID,
	username, email, passwordHash, deliveryAddress string,
	isStaff bool,
	createdAt time.Time,
) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	deliveryAddress = strings.TrimSpace(deliveryAddress)

	var usernameErr, emailErr, addressErr error
	if !usernamePattern.MatchString(username) {
		usernameErr = errs.NewValueIsInvalidErrorWithCause("username",
			fmt.Errorf("%q must be 1-150 letters, digits or @/./+/-/_", username))
	}
	if email != "" {
		if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
			emailErr = errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an e-mail address", email))
		}
	}
	if len(deliveryAddress) > 200 {
		addressErr = errs.NewValueIsOutOfRangeError("deliveryAddress length", len(deliveryAddress), 0, 200)
	}

	if err := errors.Join(id.Validate(), usernameErr, emailErr, addressErr); err != nil {
		return nil, err
	}

	return &User{
		id:              id,
		username:        username,
		email:           email,
		passwordHash:    passwordHash,
		deliveryAddress: deliveryAddress,
		isStaff:         isStaff,
		createdAt:       createdAt,
		isConstructed:   true,
	}, nil
}

func hashPassword(password string) (string, error) {
	if len(password) < minPasswordLength || len(password) > maxPasswordBytes {
		return "", errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, maxPasswordBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("password", err)
	}
	return string(hash), nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// CheckPassword reports whether password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) == nil
}

// CanManage reports whether the user may act on resources owned by ownerID.
func (u *User) CanManage(ownerID kernel.UUID) bool {
	return u.isStaff || u.id.IsEqual(ownerID)
}

func (u *User) ID() kernel.UUID         { return u.id }
func (u *User) Username() string        { return u.username }
func (u *User) Email() string           { return u.email }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) DeliveryAddress() string { return u.deliveryAddress }
func (u *User) IsStaff() bool           { return u.isStaff }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
