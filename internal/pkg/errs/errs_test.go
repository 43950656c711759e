//go:build unit

package errs_test

import (
	"testing"

	"pawsalon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var (
	errFirst  = errs.New("first sentinel")
	errSecond = errs.New("second sentinel")
)

func TestKindMarks(t *testing.T) {
	t.Run("kind attached at the return site keeps sentinels apart", func(t *testing.T) {
		err := errs.Conflict(errs.Wrap(errFirst, "booking"))

		assert.True(t, errs.Is(err, errFirst))
		assert.True(t, errs.Is(err, errs.ErrConflict))
		assert.False(t, errs.Is(err, errSecond))
		assert.False(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("stacked marks are all visible", func(t *testing.T) {
		err := errs.NotFound(errs.Mark(errs.New("row missing"), errFirst))

		assert.True(t, errs.Is(err, errFirst))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.False(t, errs.Is(err, errs.ErrInternal))
	})

	t.Run("mark of nil returns the mark", func(t *testing.T) {
		assert.Equal(t, errFirst, errs.Mark(nil, errFirst))
	})
}

func TestValidationErrors(t *testing.T) {
	var v errs.ValidationErrors
	assert.NoError(t, v.Err())

	v.Add("date", "must be YYYY-MM-DD")
	v.Add("serviceId", "must be a valid UUID")
	err := errs.Wrap(v.Err(), "availability")

	assert.True(t, errs.Is(err, errs.ErrValidation))
	assert.Equal(t, []errs.FieldError{
		{Field: "date", Message: "must be YYYY-MM-DD"},
		{Field: "serviceId", Message: "must be a valid UUID"},
	}, errs.Fields(err))
	assert.Contains(t, err.Error(), "2 error(s)")

	single := errs.Invalid("status", "unknown")
	assert.Len(t, errs.Fields(single), 1)
	assert.Nil(t, errs.Fields(errFirst))
}
