package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name   string `validate:"required"`
	People int    `validate:"min=1,max=10"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(sample{Name: "Anna", People: 2}))

	errs := ValidateStruct(sample{People: 0})
	assert.Equal(t, "This field is required", errs["Name"])
	assert.Equal(t, "Minimum value is 1", errs["People"])
	assert.Equal(t, "Name: This field is required; People: Minimum value is 1", FormatValidationErrors(errs))
}
