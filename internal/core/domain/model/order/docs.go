// Package order provides the Order aggregate of the food-delivery system.
//
// The package includes:
//   - Order: the aggregate root holding the customer, the restaurant, the ordered
//     menu items, the quantity, the total price and the current status
//   - Status: a state machine enforcing the order workflow
//
// Key business rules:
//   - An order references an existing user, restaurant and at least one menu item
//   - Quantity is positive and the total price is a valid Money amount
//   - Status moves one step forward at a time:
//     pending -> confirmed -> preparation -> dispatched -> delivered
//   - Delivered is final
//
// Status changes are persisted by the update-order-status command, which then
// notifies watchers of the order through ports.StatusNotifier.
package order
