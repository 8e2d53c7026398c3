package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexNumbers(t *testing.T) {
	var in struct {
		ID      FlexInt   `json:"id"`
		Salario FlexFloat `json:"salario"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"id": "42", "salario": "3500.50"}`), &in))
	assert.Equal(t, FlexInt(42), in.ID)
	assert.Equal(t, FlexFloat(3500.5), in.Salario)

	require.NoError(t, json.Unmarshal([]byte(`{"id": 7, "salario": 1200}`), &in))
	assert.Equal(t, FlexInt(7), in.ID)
	assert.Equal(t, FlexFloat(1200), in.Salario)

	require.NoError(t, json.Unmarshal([]byte(`{"id": "", "salario": null}`), &in))
	assert.Zero(t, in.ID)
	assert.Zero(t, in.Salario)

	assert.Error(t, json.Unmarshal([]byte(`{"id": "abc"}`), &in))
}
