package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"workboard/internal/apperr"
)

func TestUserApplyPartial(t *testing.T) {
	role := "customer"
	u := &User{ID: 1, FirstName: "Anna", Role: &role}

	err := u.Apply(map[string]any{"role": "executor", "age": float64(33)})

	assert.NoError(t, err)
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, "Anna", u.FirstName)
	assert.Equal(t, "executor", *u.Role)
	assert.Equal(t, 33, *u.Age)
	assert.Nil(t, u.LastName)
}

func TestUserApplyNullClearsOptionalField(t *testing.T) {
	phone := "+7 901 555 0101"
	u := &User{FirstName: "Anna", Phone: &phone}

	err := u.Apply(map[string]any{"phone": nil})

	assert.NoError(t, err)
	assert.Nil(t, u.Phone)
}

func TestUserApplyUnknownField(t *testing.T) {
	u := &User{}

	err := u.Apply(map[string]any{"nickname": "anka"})

	assert.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestUserApplyTypeMismatch(t *testing.T) {
	u := &User{}

	assert.Error(t, u.Apply(map[string]any{"age": "old"}))
	assert.Error(t, u.Apply(map[string]any{"age": 33.5}))
	assert.Error(t, u.Apply(map[string]any{"first_name": float64(5)}))
	assert.Error(t, u.Apply(map[string]any{"first_name": nil}))
	assert.Error(t, u.Apply(map[string]any{"id": nil}))
}

func TestUserValidate(t *testing.T) {
	u := &User{}
	err := u.Validate()
	assert.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	u.FirstName = "Anna"
	assert.NoError(t, u.Validate())
}
