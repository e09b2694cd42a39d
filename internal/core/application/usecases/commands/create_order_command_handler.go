package commands

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"
)

// CreateOrderCommandHandler places orders in the pending status.
//
// The total price is computed here from the current menu prices:
// the sum of the selected items multiplied by the quantity.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle checks that the restaurant exists and offers every selected item,
// prices the order and stores it.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	items, err := uow.MenuItemRepository().GetMany(ctx, cmd.MenuItemIDs())
	if err != nil {
		return err
	}

	total, err := priceOrder(cmd.RestaurantID(), items, cmd.Quantity())
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.UserID(), cmd.RestaurantID(), cmd.MenuItemIDs(), cmd.Quantity(), total)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func priceOrder(restaurantID kernel.UUID, items []*restaurant.MenuItem, quantity int) (kernel.Money, error) {
	var sum kernel.Money
	for _, item := range items {
		if !item.BelongsTo(restaurantID) {
			return 0, errs.NewValueIsInvalidErrorWithCause(
				"menuItemIDs",
				fmt.Errorf("menu item %s is not offered by restaurant %s", item.ID(), restaurantID),
			)
		}

		next, err := sum.Add(item.Price())
		if err != nil {
			return 0, err
		}
		sum = next
	}

	return sum.Multiply(quantity)
}
