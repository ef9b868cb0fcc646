package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gigbook/internal/models"
)

func TestGenreListValue(t *testing.T) {
	value, err := models.GenreList{"Jazz", "Reggae", "Classical"}.Value()
	assert.NoError(t, err)
	assert.Equal(t, "Jazz,Reggae,Classical", value)

	value, err = models.GenreList(nil).Value()
	assert.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestGenreListScan(t *testing.T) {
	var g models.GenreList

	assert.NoError(t, g.Scan("Jazz,Reggae,Classical"))
	assert.Equal(t, models.GenreList{"Jazz", "Reggae", "Classical"}, g)

	assert.NoError(t, g.Scan([]byte("Rock n Roll")))
	assert.Equal(t, models.GenreList{"Rock n Roll"}, g)

	assert.NoError(t, g.Scan(nil))
	assert.Nil(t, g)

	assert.NoError(t, g.Scan(""))
	assert.Nil(t, g)

	assert.Error(t, g.Scan(42))
}

func TestParseGenres(t *testing.T) {
	assert.Equal(t, models.GenreList{"Jazz", "Folk"}, models.ParseGenres("Jazz, Folk"))
	assert.Equal(t, models.GenreList{"Jazz"}, models.ParseGenres(" Jazz , "))
	assert.Nil(t, models.ParseGenres(""))
}

func TestGenreListString(t *testing.T) {
	assert.Equal(t, "Jazz, Folk", models.GenreList{"Jazz", "Folk"}.String())
	assert.Equal(t, "", models.GenreList(nil).String())
}
