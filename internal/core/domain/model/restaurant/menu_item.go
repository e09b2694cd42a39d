package restaurant

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItemDetails are the attributes of a dish.
type MenuItemDetails struct {
	Name        string
	Description string
	Cuisine     string
	Price       kernel.Money
	PhotoURL    string
}

// MenuItem is a dish offered by one restaurant.
type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	description  string
	cuisine      string
	price        kernel.Money
	photoURL     string
	createdAt    time.Time

	isConstructed bool
}

func NewMenuItem(id, restaurantID kernel.UUID, details MenuItemDetails) (*MenuItem, error) {
	return RestoreMenuItem(id, restaurantID, details, time.Now().UTC())
}

// RestoreMenuItem rebuilds a menu item loaded from persistence.
func RestoreMenuItem(id, restaurantID kernel.UUID, details MenuItemDetails, createdAt time.Time) (*MenuItem, error) {
	var restaurantErr error
	if err := restaurantID.Validate(); err != nil {
		restaurantErr = errs.NewValueIsRequiredErrorWithCause("restaurantID", err)
	}

	name, nameErr := requiredText("name", details.Name, 100)
	description, descriptionErr := optionalText("description", details.Description, 0)
	cuisine, cuisineErr := requiredText("cuisine", details.Cuisine, 100)
	photoURL, photoErr := photo(details.PhotoURL)

	if err := errors.Join(
		id.Validate(),
		restaurantErr,
		nameErr,
		descriptionErr,
		cuisineErr,
		details.Price.Validate(),
		photoErr,
	); err != nil {
		return nil, err
	}

	return &MenuItem{
		id:            id,
		restaurantID:  restaurantID,
		name:          name,
		description:   description,
		cuisine:       cuisine,
		price:         details.Price,
		photoURL:      photoURL,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func photo(raw string) (string, error) {
	raw, err := optionalText("photoURL", raw, 500)
	if err != nil || raw == "" {
		return raw, err
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", errs.NewValueIsInvalidErrorWithCause("photoURL", fmt.Errorf("%q is not an http(s) URL", raw))
	}
	return raw, nil
}

func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

func (m *MenuItem) ID() kernel.UUID           { return m.id }
func (m *MenuItem) RestaurantID() kernel.UUID { return m.restaurantID }
func (m *MenuItem) Name() string              { return m.name }
func (m *MenuItem) Description() string       { return m.description }
func (m *MenuItem) Cuisine() string           { return m.cuisine }
func (m *MenuItem) Price() kernel.Money       { return m.price }
func (m *MenuItem) PhotoURL() string          { return m.photoURL }
func (m *MenuItem) CreatedAt() time.Time      { return m.createdAt }

// BelongsTo reports whether the item is on restaurantID's menu.
func (m *MenuItem) BelongsTo(restaurantID kernel.UUID) bool {
	return m.restaurantID.IsEqual(restaurantID)
}
