package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Sentinel errors returned by the repository layer. Handlers map these to
// transport-level statuses; anything else is a storage failure.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrConflict        = errors.New("resource conflict")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidArgument = errors.New("invalid argument")
)

// isDuplicateKey reports whether err is a unique-constraint violation. GORM
// translates these to ErrDuplicatedKey when the driver supports it; the
// string checks cover drivers that do not.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
