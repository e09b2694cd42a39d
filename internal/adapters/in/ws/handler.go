// Package ws serves the order tracking websocket: GET /ws/order/:orderId/
// upgrades the request and keeps the client subscribed to status changes of
// that order until it disconnects.
package ws

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"fooddelivery/internal/core/application/tracking"
	"fooddelivery/internal/pkg/errs"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// AccessCheck decides whether the caller behind ctx may watch orderID. It
// runs before the upgrade, after the order id passed the handshake checks.
type AccessCheck func(ctx echo.Context, orderID string) error

type Option func(*Handler)

// WithAccessCheck restricts subscriptions, for example to the order owner.
func WithAccessCheck(check AccessCheck) Option {
	return func(h *Handler) {
		h.check = check
	}
}

// WithUpgrader replaces the default upgrader (1 KiB buffers, same-origin
// browsers only).
func WithUpgrader(u websocket.Upgrader) Option {
	return func(h *Handler) {
		h.upgrader = u
	}
}

type Handler struct {
	manager  *tracking.Manager
	upgrader websocket.Upgrader
	check    AccessCheck
	logger   *slog.Logger
}

func NewHandler(manager *tracking.Manager, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		manager: manager,
		upgrader: websocket.Upgrader{
			HandshakeTimeout: 10 * time.Second,
			ReadBufferSize:   1024,
			WriteBufferSize:  1024,
		},
		logger: logger.With("component", "ws_handler"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register adds the subscription route, with and without the trailing slash.
func (h *Handler) Register(e *echo.Echo, middleware ...echo.MiddlewareFunc) {
	e.GET("/ws/order/:orderId/", h.Subscribe, middleware...)
	e.GET("/ws/order/:orderId", h.Subscribe, middleware...)
}

// Subscribe validates the handshake, upgrades the connection and serves it.
// It returns once the client is gone.
func (h *Handler) Subscribe(c echo.Context) error {
	orderID, err := h.manager.ValidateOrderID(c.Param("orderId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if h.check != nil {
		if err = h.check(c, orderID); err != nil {
			return checkError(err)
		}
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already answered the request.
		h.logger.Debug("websocket upgrade failed", "order_id", orderID, "error", err)
		return nil
	}

	sub, err := h.manager.Connect(orderID, conn)
	if err != nil {
		h.logger.Warn("subscription refused", "order_id", orderID, "error", err)
		deadline := time.Now().Add(time.Second)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "tracking unavailable"), deadline)
		_ = conn.Close()
		return nil
	}

	h.manager.Serve(c.Request().Context(), sub)
	return nil
}

func checkError(err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrAccessDenied):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
