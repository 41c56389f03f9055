package models_test

import (
	"testing"

	"landing-page-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt64List_ValuePreservesOrder(t *testing.T) {
	list := models.Int64List{3, 1, 2}

	value, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, "[3,1,2]", value)
}

func TestInt64List_ValueNil(t *testing.T) {
	var list models.Int64List

	value, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", value)
}

func TestInt64List_Scan(t *testing.T) {
	var list models.Int64List
	require.NoError(t, list.Scan([]byte("[5,4,6]")))
	assert.Equal(t, models.Int64List{5, 4, 6}, list)

	var fromString models.Int64List
	require.NoError(t, fromString.Scan("[1]"))
	assert.Equal(t, models.Int64List{1}, fromString)

	var fromNil models.Int64List
	require.NoError(t, fromNil.Scan(nil))
	assert.Equal(t, models.Int64List{}, fromNil)
}

func TestInt64List_ScanUnsupportedType(t *testing.T) {
	var list models.Int64List
	err := list.Scan(42)
	assert.Error(t, err)
}
