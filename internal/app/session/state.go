// Package session provides the selection state for one recommendation run.
//
// The state is a value: every transition returns a new State and never
// mutates its receiver or the shared song slice, so a front end can hold
// onto earlier steps (e.g. for a back button) without copy bookkeeping.
package session

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/musicmatch/musicmatch/internal/app/recommend"
	"github.com/musicmatch/musicmatch/internal/domain/song"
)

// ErrSelectionFull marks an attempt to pick more songs than a selection holds.
var ErrSelectionFull = errors.New("selection is full")

// ErrIncomplete marks a Complete call on a state that is not ready yet.
var ErrIncomplete = errors.New("selection is incomplete")

// State captures the user's picks for one recommendation run: a genre, up to
// five songs, and a use case.
type State struct {
	ID        string
	Genre     string
	Songs     []song.Song
	UseCase   string
	CreatedAt time.Time
}

// New creates an empty selection state.
func New() State {
	return State{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
}

// WithGenre returns a copy with the genre set. Picking a different genre
// discards previously picked songs, since they came from the old genre's
// listing.
func (s State) WithGenre(genre string) State {
	next := s
	next.Genre = genre
	if genre != s.Genre {
		next.Songs = nil
	}
	return next
}

// ToggleSong returns a copy with the song picked, or un-picked when it is
// already in the selection (matched by TrackID). Picking past the selection
// size fails with an error marked ErrSelectionFull.
func (s State) ToggleSong(pick song.Song) (State, error) {
	next := s

	for i, picked := range s.Songs {
		if picked.TrackID == pick.TrackID {
			next.Songs = make([]song.Song, 0, len(s.Songs)-1)
			next.Songs = append(next.Songs, s.Songs[:i]...)
			next.Songs = append(next.Songs, s.Songs[i+1:]...)
			return next, nil
		}
	}

	if len(s.Songs) >= recommend.SelectionSize {
		return s, errors.Mark(
			errors.Newf("cannot pick more than %d songs", recommend.SelectionSize),
			ErrSelectionFull,
		)
	}

	next.Songs = make([]song.Song, 0, len(s.Songs)+1)
	next.Songs = append(next.Songs, s.Songs...)
	next.Songs = append(next.Songs, pick)
	return next, nil
}

// WithUseCase returns a copy with the use case set.
func (s State) WithUseCase(useCase string) State {
	next := s
	next.UseCase = useCase
	return next
}

// Ready reports whether the state holds a full selection and a use case.
func (s State) Ready() bool {
	return len(s.Songs) == recommend.SelectionSize && s.UseCase != ""
}

// Complete returns the selection and use case for the engine. It fails with
// an error marked ErrIncomplete when fewer than five songs are picked or the
// use case is missing.
func (s State) Complete() ([]song.Song, string, error) {
	if !s.Ready() {
		return nil, "", errors.Mark(
			errors.Newf("selection has %d of %d songs, use case %q",
				len(s.Songs), recommend.SelectionSize, s.UseCase),
			ErrIncomplete,
		)
	}
	return s.Songs, s.UseCase, nil
}
