package restaurant

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Details are the editable attributes of a restaurant.
type Details struct {
	Name     string
	Address  string
	Location string
	Phone    string
	Email    string
}

// Restaurant is the aggregate root owning a menu.
type Restaurant struct {
	id        kernel.UUID
	name      string
	address   string
	location  string
	phone     string
	email     string
	createdAt time.Time

	isConstructed bool
}

// NewRestaurant creates a restaurant; every validation failure is joined into
// the returned error.
func NewRestaurant(id kernel.UUID, details Details) (*Restaurant, error) {
	return RestoreRestaurant(id, details, time.Now().UTC())
}

// RestoreRestaurant rebuilds a restaurant loaded from persistence.
func RestoreRestaurant(id kernel.UUID, details Details, createdAt time.Time) (*Restaurant, error) {
	r := &Restaurant{createdAt: createdAt, isConstructed: true}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	r.id = id

	if err := r.Update(details); err != nil {
		return nil, err
	}
	return r, nil
}

// Update replaces the editable attributes. On error the restaurant is unchanged.
func (r *Restaurant) Update(details Details) error {
	name, nameErr := requiredText("name", details.Name, 100)
	address, addressErr := requiredText("address", details.Address, 200)
	location, locationErr := optionalText("location", details.Location, 200)
	phone, phoneErr := optionalText("phone", details.Phone, 20)
	email, emailErr := emailAddress(details.Email)

	if err := errors.Join(nameErr, addressErr, locationErr, phoneErr, emailErr); err != nil {
		return err
	}

	r.name, r.address, r.location, r.phone, r.email = name, address, location, phone, email
	return nil
}

func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

func (r *Restaurant) ID() kernel.UUID      { return r.id }
func (r *Restaurant) Name() string         { return r.name }
func (r *Restaurant) Address() string      { return r.address }
func (r *Restaurant) Location() string     { return r.location }
func (r *Restaurant) Phone() string        { return r.phone }
func (r *Restaurant) Email() string        { return r.email }
func (r *Restaurant) CreatedAt() time.Time { return r.createdAt }

// Details returns the editable attributes.
func (r *Restaurant) Details() Details {
	return Details{Name: r.name, Address: r.address, Location: r.location, Phone: r.phone, Email: r.email}
}
