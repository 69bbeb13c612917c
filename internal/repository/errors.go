package repository

import (
	"errors"

	"supplychainx/internal/apperror"

	"gorm.io/gorm"
)

// notFound turns gorm.ErrRecordNotFound into an apperror NotFound for entity/id.
func notFound(err error, entity string, id int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(entity, id)
	}
	return err
}

// likeName builds a case-insensitive substring pattern.
func likeName(name string) string {
	return "%" + name + "%"
}
