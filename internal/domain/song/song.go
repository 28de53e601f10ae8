// Package song provides the Song domain entity.
package song

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/mapstructure"
)

// ErrValidation marks errors from record construction: a raw field could not
// be coerced to its declared type. Callers classify with errors.Is.
var ErrValidation = errors.New("song record validation failed")

// Song represents one track with its pre-computed audio features.
// Immutable after construction; the engine reads the fields directly.
type Song struct {
	TrackID      string  `mapstructure:"track_id"`
	Name         string  `mapstructure:"track_name"`
	Artist       string  `mapstructure:"track_artist"`
	Popularity   int     `mapstructure:"track_popularity"` // 0-100
	Genre        string  `mapstructure:"playlist_genre"`
	Subgenre     string  `mapstructure:"playlist_subgenre"`
	Danceability float64 `mapstructure:"danceability"` // 0.0-1.0
	Energy       float64 `mapstructure:"energy"`       // 0.0-1.0
	Valence      float64 `mapstructure:"valence"`      // 0.0-1.0
	Tempo        float64 `mapstructure:"tempo"`        // BPM
	Acousticness float64 `mapstructure:"acousticness"` // 0.0-1.0
	Loudness     float64 `mapstructure:"loudness"`     // dB, typically -60..0
}

// New builds a Song from a raw loader row (column name -> cell value).
// Numeric cells are coerced to their declared types; a cell that cannot be
// coerced fails with an error marked ErrValidation. Out-of-range values are
// accepted as-is: validation here means type coercion only.
func New(raw map[string]string) (Song, error) {
	var s Song

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &s,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Song{}, errors.Wrap(err, "failed to create decoder")
	}

	if err := decoder.Decode(raw); err != nil {
		return Song{}, errors.Mark(
			errors.Wrapf(err, "song %q", raw["track_id"]),
			ErrValidation,
		)
	}

	return s, nil
}

// String returns the display form of the song.
func (s Song) String() string {
	return fmt.Sprintf("%s by %s (%s)", s.Name, s.Artist, s.Genre)
}
