package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loopers/member-api/pkg/apperr"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(apperr.BadRequest("nope")))
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(apperr.Conflict("dup")))
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(errors.New("plain")))
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(nil))
}

func TestKindOf_Wrapped(t *testing.T) {
	inner := apperr.NotFound("member not found")
	outer := fmt.Errorf("loading profile: %w", inner)
	assert.True(t, apperr.IsNotFound(outer))
}

func TestWrap(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := apperr.Wrap(apperr.KindConflict, "member id already exists", cause)
	assert.Equal(t, "member id already exists", err.Error())
	assert.True(t, apperr.IsConflict(err))
	assert.ErrorIs(t, err, cause)
}
