package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrDuplicateKey  = errors.New("duplicate key")
	ErrFarmNotOwned  = errors.New("farm not owned by user")
	ErrCheckViolated = errors.New("check constraint violated")
)

// translateConstraintError maps driver constraint failures onto the package
// sentinels. The dialector already translates most of them; the message match
// covers errors that reach us untranslated through raw Exec calls.
func translateConstraintError(err error) error {
	if err == nil {
		return nil
	}

	message := err.Error()
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey), strings.Contains(message, "UNIQUE constraint failed"):
		return errors.Join(ErrDuplicateKey, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated), strings.Contains(message, "FOREIGN KEY constraint failed"):
		return errors.Join(ErrFarmNotOwned, err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated), strings.Contains(message, "CHECK constraint failed"):
		return errors.Join(ErrCheckViolated, err)
	default:
		return err
	}
}
