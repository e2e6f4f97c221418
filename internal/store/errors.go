package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the requested row, or a row it
	// references, does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a direct insert violates a unique
	// constraint (duplicate username/email, duplicate period tuple).
	ErrConflict = errors.New("record already exists")
)

// mapErr converts gorm/driver failures into the store's sentinel errors.
// The modernc sqlite driver does not always feed gorm's error
// translation, so constraint failures are also matched by message.
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case strings.Contains(err.Error(), "UNIQUE constraint"):
		return ErrConflict
	case strings.Contains(err.Error(), "FOREIGN KEY constraint"):
		return ErrNotFound
	}
	return err
}
