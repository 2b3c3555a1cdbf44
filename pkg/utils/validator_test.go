package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required"`
	Seats []int  `json:"seats,omitempty" validate:"required,unique"`
	Kind  string `json:"kind" validate:"omitempty,oneof=a b"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.Nil(t, ValidateStruct(sampleRequest{Name: "x", Seats: []int{1, 2}}))
	})

	t.Run("keys use json names", func(t *testing.T) {
		errs := ValidateStruct(sampleRequest{Seats: []int{1, 1}, Kind: "c"})
		assert.Equal(t, map[string]string{
			"name":  "This field is required",
			"seats": "Values must be unique",
			"kind":  "Must be one of: a, b",
		}, errs)
	})
}

func TestFormatValidationErrors(t *testing.T) {
	msg := FormatValidationErrors(map[string]string{
		"seats": "Values must be unique",
		"name":  "This field is required",
	})
	assert.Equal(t, "name: This field is required; seats: Values must be unique", msg)
}
