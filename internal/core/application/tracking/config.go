package tracking

import (
	"fmt"
	"time"

	"fooddelivery/internal/pkg/errs"
)

// Config tunes subscriber connections.
type Config struct {
	// QueueSize is the number of events a subscriber may have pending before
	// it is considered too slow and closed.
	QueueSize int
	// WriteTimeout bounds every frame written to a client.
	WriteTimeout time.Duration
	// PingInterval is the keepalive period.
	PingInterval time.Duration
	// IdleTimeout closes subscribers that sent neither a frame nor a pong for
	// that long. Zero disables the check.
	IdleTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		QueueSize:    16,
		WriteTimeout: 10 * time.Second,
		PingInterval: 30 * time.Second,
		IdleTimeout:  90 * time.Second,
	}
}

func (c Config) Validate() error {
	if c.QueueSize < 1 || c.QueueSize > 4096 {
		return errs.NewValueIsOutOfRangeError("queue size", c.QueueSize, 1, 4096)
	}
	if c.WriteTimeout <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("write timeout", fmt.Errorf("%s is not positive", c.WriteTimeout))
	}
	if c.PingInterval <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("ping interval", fmt.Errorf("%s is not positive", c.PingInterval))
	}
	if c.IdleTimeout < 0 {
		return errs.NewValueIsInvalidErrorWithCause("idle timeout", fmt.Errorf("%s is negative", c.IdleTimeout))
	}
	if c.IdleTimeout > 0 && c.IdleTimeout <= c.PingInterval {
		return errs.NewValueIsInvalidErrorWithCause("idle timeout",
			fmt.Errorf("%s must exceed the ping interval %s", c.IdleTimeout, c.PingInterval))
	}
	return nil
}
