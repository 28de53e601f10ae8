package catalog

import (
	"sort"
	"strings"
	"sync"

	zlog "github.com/rs/zerolog/log"

	"github.com/musicmatch/musicmatch/internal/domain/headphone"
	"github.com/musicmatch/musicmatch/internal/domain/song"
)

// Store holds the loaded catalogs. Loads build complete new slices and swap
// them under the lock, so a reload never mutates a snapshot that a running
// recommendation may still be reading. Accessors return the current
// snapshot; callers must treat it as read-only.
type Store struct {
	mu         sync.RWMutex
	songs      []song.Song
	headphones []headphone.Headphone
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Load reads both catalogs from the given CSV paths and installs them as the
// current snapshot. Safe to call again for hot reloads.
func (st *Store) Load(songsPath, headphonesPath string) error {
	songs, songsSkipped, err := LoadSongs(songsPath)
	if err != nil {
		return err
	}
	headphones, hpSkipped, err := LoadHeadphones(headphonesPath)
	if err != nil {
		return err
	}

	st.mu.Lock()
	st.songs = songs
	st.headphones = headphones
	st.mu.Unlock()

	zlog.Info().
		Int("songs", len(songs)).
		Int("songs_skipped", songsSkipped).
		Int("headphones", len(headphones)).
		Int("headphones_skipped", hpSkipped).
		Msg("catalog loaded")
	return nil
}

// Songs returns the current song snapshot.
func (st *Store) Songs() []song.Song {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.songs
}

// Headphones returns the current headphone snapshot.
func (st *Store) Headphones() []headphone.Headphone {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.headphones
}

// Genres returns the distinct song genres with their song counts, sorted by
// genre name.
func (st *Store) Genres() []GenreCount {
	songs := st.Songs()

	counts := make(map[string]int)
	for _, s := range songs {
		counts[s.Genre]++
	}

	genres := make([]GenreCount, 0, len(counts))
	for g, n := range counts {
		genres = append(genres, GenreCount{Genre: g, Count: n})
	}
	sort.Slice(genres, func(i, j int) bool {
		return genres[i].Genre < genres[j].Genre
	})
	return genres
}

// GenreCount pairs a genre with its number of songs.
type GenreCount struct {
	Genre string
	Count int
}

// SongsByGenre returns the songs of the given genre (case-insensitive),
// in catalog order.
func (st *Store) SongsByGenre(genre string) []song.Song {
	var out []song.Song
	for _, s := range st.Songs() {
		if strings.EqualFold(s.Genre, genre) {
			out = append(out, s)
		}
	}
	return out
}

// FindSong looks a song up by track ID.
func (st *Store) FindSong(trackID string) (song.Song, bool) {
	for _, s := range st.Songs() {
		if s.TrackID == trackID {
			return s, true
		}
	}
	return song.Song{}, false
}

// SearchSongs returns up to limit songs whose name or artist contains the
// query, case-insensitively. An empty query matches everything; limit <= 0
// means no limit.
func (st *Store) SearchSongs(query string, limit int) []song.Song {
	query = strings.ToLower(query)

	var out []song.Song
	for _, s := range st.Songs() {
		if query != "" &&
			!strings.Contains(strings.ToLower(s.Name), query) &&
			!strings.Contains(strings.ToLower(s.Artist), query) {
			continue
		}
		out = append(out, s)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
