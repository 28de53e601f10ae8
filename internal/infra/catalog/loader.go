// Package catalog provides CSV catalog loading and the in-memory snapshot store.
package catalog

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/musicmatch/musicmatch/internal/domain/headphone"
	"github.com/musicmatch/musicmatch/internal/domain/song"
)

// songColumns and headphoneColumns are the required CSV headers, matching
// the original datasets.
var songColumns = []string{
	"track_id", "track_name", "track_artist", "track_popularity",
	"playlist_genre", "playlist_subgenre", "danceability", "energy",
	"valence", "tempo", "acousticness", "loudness",
}

var headphoneColumns = []string{
	"headphone_id", "brand", "model", "price", "type", "use_case",
	"bass_level", "sound_profile", "noise_cancellation",
	"user_rating", "user_reviews",
}

// LoadSongs reads the song CSV at path. Rows that fail record validation are
// skipped with a warning; the returned count says how many were skipped.
// A missing required column is a load error.
func LoadSongs(path string) ([]song.Song, int, error) {
	var songs []song.Song
	skipped, err := loadRows(path, songColumns, func(raw map[string]string) error {
		s, err := song.New(raw)
		if err != nil {
			return err
		}
		songs = append(songs, s)
		return nil
	})
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to load songs")
	}
	return songs, skipped, nil
}

// LoadHeadphones reads the headphone CSV at path, with the same skip-on-bad-row
// semantics as LoadSongs.
func LoadHeadphones(path string) ([]headphone.Headphone, int, error) {
	var headphones []headphone.Headphone
	skipped, err := loadRows(path, headphoneColumns, func(raw map[string]string) error {
		h, err := headphone.New(raw)
		if err != nil {
			return err
		}
		headphones = append(headphones, h)
		return nil
	})
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to load headphones")
	}
	return headphones, skipped, nil
}

// Columns returns the trimmed header row of the CSV at path.
func Columns(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open data file")
	}
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read header row")
	}
	for i, c := range header {
		header[i] = strings.TrimSpace(c)
	}
	return header, nil
}

// loadRows streams the CSV at path, handing each data row to consume as a
// column->cell map. Rows rejected by consume are counted, logged, and
// skipped; the load itself only fails on I/O, CSV syntax, or header errors.
func loadRows(path string, required []string, consume func(map[string]string) error) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "failed to open data file")
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		return 0, errors.Wrap(err, "failed to read header row")
	}
	for i, c := range header {
		header[i] = strings.TrimSpace(c)
	}
	if err := checkColumns(header, required); err != nil {
		return 0, err
	}

	skipped := 0
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return 0, errors.Wrapf(err, "failed to read row at line %d", line)
		}

		raw := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				raw[col] = strings.TrimSpace(record[i])
			}
		}

		if err := consume(raw); err != nil {
			// Bad rows are the loader's problem, not the caller's: skip and
			// keep going.
			zlog.Warn().Str("file", path).Int("line", line).Msgf("skipping row: %v", err)
			skipped++
		}
	}

	return skipped, nil
}

func checkColumns(header, required []string) error {
	have := make(map[string]struct{}, len(header))
	for _, c := range header {
		have[c] = struct{}{}
	}
	for _, c := range required {
		if _, ok := have[c]; !ok {
			return errors.Newf("missing required column %q", c)
		}
	}
	return nil
}
