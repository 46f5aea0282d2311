package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusOf(NotFound("user not found")))
	assert.Equal(t, http.StatusBadRequest, StatusOf(Validationf("bad field %q", "age")))
	assert.Equal(t, http.StatusConflict, StatusOf(Conflictf("duplicate key")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(Internal(errors.New("boom"))))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("untyped")))
}

func TestMessageOfHidesInternalDetails(t *testing.T) {
	assert.Equal(t, "internal server error", MessageOf(errors.New("pq: connection refused")))
	assert.Equal(t, "internal server error", MessageOf(Internal(errors.New("pq: connection refused"))))
	assert.Equal(t, "user not found", MessageOf(NotFound("user not found")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("fetching row: %w", NotFound("order not found"))

	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, http.StatusNotFound, StatusOf(err))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Internal(cause)

	assert.ErrorIs(t, err, cause)
}
