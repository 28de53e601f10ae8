package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedStore(t *testing.T) *Store {
	t.Helper()
	songsPath := writeFile(t, "songs.csv", songsCSV)
	headphonesPath := writeFile(t, "headphones.csv", headphonesCSV)

	store := NewStore()
	require.NoError(t, store.Load(songsPath, headphonesPath))
	return store
}

func TestStore_Load(t *testing.T) {
	store := loadedStore(t)

	assert.Len(t, store.Songs(), 3)
	assert.Len(t, store.Headphones(), 2)
}

func TestStore_ReloadSwapsSnapshot(t *testing.T) {
	store := loadedStore(t)
	before := store.Songs()
	require.Len(t, before, 3)

	// Reload with a smaller catalog; the old snapshot must stay intact.
	songsPath := writeFile(t, "songs.csv",
		"track_id,track_name,track_artist,track_popularity,playlist_genre,playlist_subgenre,danceability,energy,valence,tempo,acousticness,loudness\n"+
			"t9,Solo,One Artist,50,edm,big room,0.7,0.9,0.4,128,0.01,-3.5\n")
	headphonesPath := writeFile(t, "headphones.csv", headphonesCSV)
	require.NoError(t, store.Load(songsPath, headphonesPath))

	assert.Len(t, store.Songs(), 1)
	assert.Len(t, before, 3)
	assert.Equal(t, "t1", before[0].TrackID)
}

func TestStore_Genres(t *testing.T) {
	store := loadedStore(t)

	genres := store.Genres()
	require.Len(t, genres, 2)
	assert.Equal(t, GenreCount{Genre: "pop", Count: 2}, genres[0])
	assert.Equal(t, GenreCount{Genre: "rock", Count: 1}, genres[1])
}

func TestStore_SongsByGenre(t *testing.T) {
	store := loadedStore(t)

	pop := store.SongsByGenre("POP")
	require.Len(t, pop, 2)
	assert.Equal(t, "t1", pop[0].TrackID)

	assert.Empty(t, store.SongsByGenre("jazz"))
}

func TestStore_FindSong(t *testing.T) {
	store := loadedStore(t)

	s, ok := store.FindSong("t2")
	require.True(t, ok)
	assert.Equal(t, "Blinding Lights", s.Name)

	_, ok = store.FindSong("missing")
	assert.False(t, ok)
}

func TestStore_SearchSongs(t *testing.T) {
	store := loadedStore(t)

	tests := []struct {
		name     string
		query    string
		limit    int
		expected []string
	}{
		{name: "by name fragment", query: "light", limit: 0, expected: []string{"t2"}},
		{name: "by artist", query: "maroon", limit: 0, expected: []string{"t1"}},
		{name: "empty query matches all", query: "", limit: 0, expected: []string{"t1", "t2", "t4"}},
		{name: "limit applies", query: "", limit: 2, expected: []string{"t1", "t2"}},
		{name: "no hits", query: "zzz", limit: 0, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []string
			for _, s := range store.SearchSongs(tt.query, tt.limit) {
				ids = append(ids, s.TrackID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}
