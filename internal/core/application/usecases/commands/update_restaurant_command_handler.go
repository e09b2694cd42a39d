package commands

import (
	"context"
)

type UpdateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

func NewUpdateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) UpdateRestaurantCommandHandler {
	return UpdateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the restaurant, applies the new details and saves it.
// Returns an ObjectNotFoundError for an unknown restaurant.
func (h *UpdateRestaurantCommandHandler) Handle(ctx context.Context, cmd UpdateRestaurantCommand) error {
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

	repo := uow.RestaurantRepository()
	r, err := repo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if err = r.Update(cmd.Details()); err != nil {
		return err
	}

	if err = repo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
