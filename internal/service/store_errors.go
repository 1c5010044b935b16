package service

import (
	stderrors "errors"

	"gorm.io/gorm"
)

// The stores are opened with TranslateError, so unique and foreign key
// violations surface as gorm sentinels on every driver.

func isDuplicate(err error) bool {
	return stderrors.Is(err, gorm.ErrDuplicatedKey)
}

// isMissingReference reports a write that points at a profile which no
// longer exists.
func isMissingReference(err error) bool {
	return stderrors.Is(err, gorm.ErrForeignKeyViolated)
}
