// Package tracking pushes order status changes to the clients watching an
// order over a websocket.
//
// The moving parts, leaves first:
//
//   - Registry maps a topic (the order id) to the handles currently subscribed
//     to it. It is owned by a single goroutine started with Run; every other
//     goroutine talks to it through channels.
//   - Subscriber is one client connection. It owns a bounded FIFO queue and a
//     writer goroutine, so publishing never blocks on a slow client.
//   - Publisher fans a status event out to a snapshot of a topic's
//     subscribers. Delivery is best effort: a failed handle is logged and
//     dropped, the others still get the event.
//   - Manager drives the connection lifecycle Connecting -> Subscribed ->
//     Closed and guarantees that a closed connection is no longer in the
//     registry when Serve returns.
//   - Notifier adapts the Publisher to ports.StatusNotifier, which the
//     update-order-status command calls after its transaction commits.
//
// Wiring:
//
//	registry := tracking.NewRegistry()
//	go registry.Run(ctx)
//
//	manager := tracking.NewManager(registry, tracking.DefaultConfig(), logger)
//	notifier := tracking.NewNotifier(tracking.NewPublisher(registry, logger))
//
//	sub, err := manager.Connect(orderID, wsConn)
//	if err != nil {
//	    // *tracking.HandshakeError
//	}
//	manager.Serve(ctx, sub) // returns after the client is gone
package tracking
