package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefUnmarshalBareID(t *testing.T) {
	var p Product
	err := json.Unmarshal([]byte(`{"_id":"p1","name":"Tee","category":"cat1"}`), &p)
	require.NoError(t, err)

	assert.Equal(t, "cat1", p.Category.Key())
	_, ok := p.Category.Populated()
	assert.False(t, ok)
}

func TestRefUnmarshalPopulated(t *testing.T) {
	var p Product
	err := json.Unmarshal([]byte(`{"_id":"p1","name":"Tee","category":{"_id":"cat1","name":"Shirts"}}`), &p)
	require.NoError(t, err)

	assert.Equal(t, "cat1", p.Category.Key())
	category, ok := p.Category.Populated()
	require.True(t, ok)
	assert.Equal(t, "Shirts", category.Name)
}

func TestRefUnmarshalNull(t *testing.T) {
	var p Product
	err := json.Unmarshal([]byte(`{"_id":"p1","name":"Tee","category":null,"fit":null}`), &p)
	require.NoError(t, err)

	assert.True(t, p.Fit.IsZero())
	assert.Equal(t, "", p.Fit.Key())
}

func TestRefMarshalRoundTrip(t *testing.T) {
	original := Product{
		ID:       "p1",
		Name:     "Tee",
		Category: Ref[Category]{ID: "cat1"},
		Fit:      Ref[Fit]{Value: &Fit{ID: "f1", Name: "Slim"}},
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Product
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "cat1", decoded.Category.Key())
	assert.Equal(t, "f1", decoded.Fit.Key())
	fit, ok := decoded.Fit.Populated()
	require.True(t, ok)
	assert.Equal(t, "Slim", fit.Name)
}
