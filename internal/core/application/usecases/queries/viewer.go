// Package queries contains read-only operations that go straight to the
// database through GORM, bypassing the aggregates.
package queries

import (
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// Viewer is the authenticated user a query runs for. Customers only see their
// own orders and account; staff see everything.
type Viewer struct {
	UserID  kernel.UUID
	IsStaff bool
}

func (v Viewer) validate() error {
	if err := v.UserID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("viewer", err)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching value anywhere in a column.
func containsPattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

func notFound(kind string, id kernel.UUID) error {
	return errs.NewObjectNotFoundError(kind, id.String())
}
