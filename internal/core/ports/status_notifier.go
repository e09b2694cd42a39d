package ports

import "context"

// StatusNotifier is told about every committed order status change so that
// clients watching the order can be updated.
//
// The notifier does not validate newStatus and never reports delivery
// problems back to the caller: a status change that reached the database is
// not undone because a watcher went away.
type StatusNotifier interface {
	OnStatusChanged(ctx context.Context, orderID string, newStatus string)
}
