package model

import (
	"math"

	"workboard/internal/apperr"
)

// stringValue converts a decoded JSON value to an optional string column
// value. JSON null clears the column.
func stringValue(key string, raw any) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, apperr.Validationf("field %q must be a string", key)
	}
	return &s, nil
}

// intValue converts a decoded JSON value to an optional integer column
// value. encoding/json decodes every number as float64, so the value must
// be integral.
func intValue(key string, raw any) (*int, error) {
	if raw == nil {
		return nil, nil
	}
	f, ok := raw.(float64)
	if !ok || f != math.Trunc(f) {
		return nil, apperr.Validationf("field %q must be an integer", key)
	}
	n := int(f)
	return &n, nil
}
