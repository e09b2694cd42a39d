package order

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a customer's order at one restaurant.
//
// Order follows these invariants:
//   - id, userID and restaurantID are valid UUIDs
//   - at least one menu item, without duplicates
//   - quantity is positive
//   - totalPrice is a valid Money amount
//   - status changes one workflow step at a time
type Order struct {
	id           kernel.UUID
	userID       kernel.UUID
	restaurantID kernel.UUID
	menuItemIDs  []kernel.UUID
	quantity     int
	totalPrice   kernel.Money
	status       Status
	createdAt    time.Time

	isConstructed bool
}

// NewOrder creates a Pending order.
//
//	o, err := order.NewOrder(kernel.NewUUID(), userID, restaurantID, itemIDs, 2, total)
//	if err != nil {
//	    // one or more arguments were invalid; err joins all of them
//	}
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	menuItemIDs []kernel.UUID,
	quantity int,
	totalPrice kernel.Money,
) (*Order, error) {
	return RestoreOrder(id, userID, restaurantID, menuItemIDs, quantity, totalPrice, Pending, time.Now().UTC())
}

// RestoreOrder rebuilds an order loaded from persistence, keeping its status and
// creation time.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	menuItemIDs []kernel.UUID,
	quantity int,
	totalPrice kernel.Money,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setUserID(userID),
		order.setRestaurantID(restaurantID),
		order.setMenuItemIDs(menuItemIDs),
		order.setQuantity(quantity),
		order.setTotalPrice(totalPrice),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) UserID() kernel.UUID {
	return o.userID
}

func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// MenuItemIDs returns a copy of the ordered menu item identifiers.
func (o *Order) MenuItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(o.menuItemIDs))
	copy(ids, o.menuItemIDs)
	return ids
}

func (o *Order) Quantity() int {
	return o.quantity
}

func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsOwnedBy reports whether the order was placed by userID.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

// ChangeStatus moves the order to target. Only the next workflow step is
// accepted; on error the order is left unchanged.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantID", err)
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setMenuItemIDs(menuItemIDs []kernel.UUID) error {
	if len(menuItemIDs) == 0 {
		return errs.NewValueIsRequiredError("menuItemIDs")
	}

	seen := make(map[kernel.UUID]struct{}, len(menuItemIDs))
	ids := make([]kernel.UUID, 0, len(menuItemIDs))
	for _, id := range menuItemIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("menuItemIDs", err)
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause("menuItemIDs", fmt.Errorf("%s is listed twice", id))
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	o.menuItemIDs = ids
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setTotalPrice(totalPrice kernel.Money) error {
	if err := totalPrice.Validate(); err != nil {
		return err
	}
	o.totalPrice = totalPrice
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
