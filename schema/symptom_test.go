package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymptomID(t *testing.T) {
	assert.Equal(t, "chest_pain", SymptomID("chest pain"))
	assert.Equal(t, "severe_shortness_of_breath", SymptomID(" Severe Shortness of Breath "))
	assert.Equal(t, "cough", SymptomID("cough"))
}
