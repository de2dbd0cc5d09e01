package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestDomainOrPersistClassification(t *testing.T) {
	assert.NoError(t, domainOrPersist(nil))

	// Typed failures pass through untouched
	conflict := fmt.Errorf("%w: %q", ErrConflict, "Lockjaw")
	assert.ErrorIs(t, domainOrPersist(conflict), ErrConflict)

	// A unique-index violation that slipped past an in-transaction check is
	// a permanent conflict, not a retriable persistence failure
	translated := domainOrPersist(gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, translated, ErrConflict)
	assert.NotErrorIs(t, translated, ErrPersistence)

	// Everything else is a persistence failure
	assert.ErrorIs(t, domainOrPersist(errors.New("connection reset")), ErrPersistence)
}
