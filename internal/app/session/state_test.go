package session

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicmatch/musicmatch/internal/domain/song"
)

func pick(i int) song.Song {
	return song.Song{TrackID: fmt.Sprintf("track-%d", i), Name: fmt.Sprintf("Song %d", i)}
}

func TestNew(t *testing.T) {
	s := New()
	assert.NotEmpty(t, s.ID)
	assert.Empty(t, s.Songs)
	assert.False(t, s.Ready())

	other := New()
	assert.NotEqual(t, s.ID, other.ID)
}

func TestWithGenre_ResetsSongsOnChange(t *testing.T) {
	s := New().WithGenre("pop")
	s, err := s.ToggleSong(pick(1))
	require.NoError(t, err)

	same := s.WithGenre("pop")
	assert.Len(t, same.Songs, 1, "re-picking the same genre keeps the songs")

	changed := s.WithGenre("rock")
	assert.Equal(t, "rock", changed.Genre)
	assert.Empty(t, changed.Songs, "changing genre discards picked songs")
}

func TestToggleSong(t *testing.T) {
	s := New().WithGenre("pop")

	s, err := s.ToggleSong(pick(1))
	require.NoError(t, err)
	s, err = s.ToggleSong(pick(2))
	require.NoError(t, err)
	assert.Len(t, s.Songs, 2)

	// Toggling an already-picked song removes it.
	s, err = s.ToggleSong(pick(1))
	require.NoError(t, err)
	require.Len(t, s.Songs, 1)
	assert.Equal(t, "track-2", s.Songs[0].TrackID)
}

func TestToggleSong_Full(t *testing.T) {
	s := New().WithGenre("pop")

	var err error
	for i := 0; i < 5; i++ {
		s, err = s.ToggleSong(pick(i))
		require.NoError(t, err)
	}

	_, err = s.ToggleSong(pick(99))
	assert.True(t, errors.Is(err, ErrSelectionFull))

	// A full selection can still un-pick.
	s, err = s.ToggleSong(pick(0))
	require.NoError(t, err)
	assert.Len(t, s.Songs, 4)
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	base := New().WithGenre("pop")
	base, err := base.ToggleSong(pick(1))
	require.NoError(t, err)

	next, err := base.ToggleSong(pick(2))
	require.NoError(t, err)
	_, err = next.ToggleSong(pick(3))
	require.NoError(t, err)
	_ = next.WithUseCase("Workout")
	_ = next.WithGenre("rock")

	assert.Len(t, base.Songs, 1)
	assert.Len(t, next.Songs, 2)
	assert.Empty(t, base.UseCase)
	assert.Equal(t, "pop", base.Genre)
}

func TestComplete(t *testing.T) {
	s := New().WithGenre("pop")

	var err error
	for i := 0; i < 5; i++ {
		s, err = s.ToggleSong(pick(i))
		require.NoError(t, err)
	}

	// Missing use case.
	_, _, err = s.Complete()
	assert.True(t, errors.Is(err, ErrIncomplete))

	s = s.WithUseCase("Gaming")
	require.True(t, s.Ready())

	songs, useCase, err := s.Complete()
	require.NoError(t, err)
	assert.Len(t, songs, 5)
	assert.Equal(t, "Gaming", useCase)
}

func TestComplete_TooFewSongs(t *testing.T) {
	s := New().WithGenre("pop").WithUseCase("Studio")
	s, err := s.ToggleSong(pick(1))
	require.NoError(t, err)

	_, _, err = s.Complete()
	assert.True(t, errors.Is(err, ErrIncomplete))
}
