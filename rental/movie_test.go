package rental

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	testCases := []struct {
		code     string
		expected Category
	}{
		{"REGULAR", Regular},
		{"regular", Regular},
		{" Regular ", Regular},
		{"NEW_RELEASE", NewRelease},
		{"new release", NewRelease},
		{"New-Release", NewRelease},
		{"CHILDRENS", Childrens},
		{"childrens", Childrens},
		{"Children's", Childrens},
	}
	for _, tt := range testCases {
		c, err := ParseCategory(tt.code)
		require.NoError(t, err, tt.code)
		assert.Equal(t, tt.expected, c, tt.code)
	}
}

func TestParseUnknownCategory(t *testing.T) {
	testCases := []struct {
		code string
	}{
		{""},
		{"DOCUMENTARY"},
		{"NEWRELEASE"},
		{"CHILDREN"},
	}
	for _, tt := range testCases {
		_, err := ParseCategory(tt.code)
		assert.Error(t, err)
		assert.Equal(t, ErrUnknownCategory, errors.Cause(err))
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "REGULAR", Regular.String())
	assert.Equal(t, "NEW_RELEASE", NewRelease.String())
	assert.Equal(t, "CHILDRENS", Childrens.String())
	assert.Equal(t, "Category(7)", Category(7).String())
	assert.False(t, Category(7).Valid())
}

func TestNewMovie(t *testing.T) {
	m := NewMovie("Taxi", Regular)
	assert.Equal(t, "Taxi", m.Title())
	assert.Equal(t, Regular, m.Category())

	assert.Panics(t, func() { NewMovie("Unknown", Category(3)) })
}

func TestNewRental(t *testing.T) {
	m := NewMovie("Taxi", Regular)

	r, err := NewRental(m, 0)
	require.NoError(t, err)
	assert.Equal(t, m, r.Movie())
	assert.Equal(t, 0, r.DaysRented())
	assert.Equal(t, 2.0, r.Charge())
	assert.Equal(t, 1, r.Points())

	_, err = NewRental(m, -1)
	assert.Error(t, err)
	assert.Equal(t, ErrNegativeDays, errors.Cause(err))
	assert.Equal(t, `-1 days of "Taxi": days rented cannot be negative`, err.Error())
}
