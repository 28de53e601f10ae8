package song

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRow() map[string]string {
	return map[string]string{
		"track_id":          "6f807x0ima9a1j3VPbc7VN",
		"track_name":        "Memories",
		"track_artist":      "Maroon 5",
		"track_popularity":  "66",
		"playlist_genre":    "pop",
		"playlist_subgenre": "dance pop",
		"danceability":      "0.764",
		"energy":            "0.32",
		"valence":           "0.575",
		"tempo":             "91.03",
		"acousticness":      "0.837",
		"loudness":          "-7.209",
	}
}

func TestNew(t *testing.T) {
	s, err := New(validRow())
	require.NoError(t, err)

	assert.Equal(t, "6f807x0ima9a1j3VPbc7VN", s.TrackID)
	assert.Equal(t, "Memories", s.Name)
	assert.Equal(t, "Maroon 5", s.Artist)
	assert.Equal(t, 66, s.Popularity)
	assert.Equal(t, "pop", s.Genre)
	assert.Equal(t, "dance pop", s.Subgenre)
	assert.InDelta(t, 0.764, s.Danceability, 1e-9)
	assert.InDelta(t, 0.32, s.Energy, 1e-9)
	assert.InDelta(t, 0.575, s.Valence, 1e-9)
	assert.InDelta(t, 91.03, s.Tempo, 1e-9)
	assert.InDelta(t, 0.837, s.Acousticness, 1e-9)
	assert.InDelta(t, -7.209, s.Loudness, 1e-9)
}

func TestNew_CoercionFailures(t *testing.T) {
	tests := []struct {
		name   string
		column string
		value  string
	}{
		{name: "non-numeric popularity", column: "track_popularity", value: "very popular"},
		{name: "non-numeric energy", column: "energy", value: "high"},
		{name: "non-numeric tempo", column: "tempo", value: "fast"},
		{name: "non-numeric loudness", column: "loudness", value: "-7.2dB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validRow()
			row[tt.column] = tt.value

			_, err := New(row)
			assert.True(t, errors.Is(err, ErrValidation), "expected ErrValidation, got %v", err)
		})
	}
}

func TestNew_OutOfRangeAcceptedAsIs(t *testing.T) {
	// Validation means type coercion only; range is not checked.
	row := validRow()
	row["energy"] = "1.7"
	row["track_popularity"] = "140"

	s, err := New(row)
	require.NoError(t, err)
	assert.InDelta(t, 1.7, s.Energy, 1e-9)
	assert.Equal(t, 140, s.Popularity)
}

func TestString(t *testing.T) {
	s, err := New(validRow())
	require.NoError(t, err)
	assert.Equal(t, "Memories by Maroon 5 (pop)", s.String())
}
