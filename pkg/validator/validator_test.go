package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name  string `validate:"required"`
	Count int    `validate:"gte=0"`
}

func TestValidateStructPasses(t *testing.T) {
	errs := ValidateStruct(&sampleForm{Name: "Kandang A", Count: 3})
	assert.Empty(t, errs)
}

func TestValidateStructReportsFailures(t *testing.T) {
	errs := ValidateStruct(&sampleForm{Count: -1})
	require.Len(t, errs, 2)
	assert.Equal(t, "sampleForm.Name", errs[0].FailedField)
	assert.Equal(t, "required", errs[0].Tag)
	assert.Equal(t, "gte", errs[1].Tag)
}

func TestFirstMessage(t *testing.T) {
	errs := ValidateStruct(&sampleForm{Count: 1})
	assert.Equal(t, "validation failed: field 'sampleForm.Name' failed on tag 'required'", FirstMessage(errs))

	assert.Empty(t, FirstMessage(nil))
}
