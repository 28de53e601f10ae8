package main

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/musicmatch/musicmatch/internal/app/recommend"
	"github.com/musicmatch/musicmatch/internal/app/session"
	"github.com/musicmatch/musicmatch/internal/domain/headphone"
	"github.com/musicmatch/musicmatch/internal/infra/catalog"
	"github.com/musicmatch/musicmatch/internal/infra/config"
)

// loadStore loads both catalogs per the config.
func loadStore(cfg *config.Config) (*catalog.Store, error) {
	store := catalog.NewStore()
	if err := store.Load(cfg.Data.Songs, cfg.Data.Headphones); err != nil {
		return nil, err
	}
	return store, nil
}

// runRecommend replays the user's picks through the selection state and
// hands the completed selection to the engine.
func runRecommend(cfg *config.Config, trackIDs []string, genre, useCase string) error {
	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	state := session.New().WithGenre(genre).WithUseCase(useCase)
	for _, id := range trackIDs {
		s, ok := store.FindSong(id)
		if !ok {
			return errors.Newf("track %q not found in the song catalog", id)
		}
		state, err = state.ToggleSong(s)
		if err != nil {
			return err
		}
	}
	zlog.Debug().Str("session", state.ID).Int("songs", len(state.Songs)).Msg("selection built")

	selection, chosenCase, err := state.Complete()
	if err != nil {
		return err
	}

	result, err := recommend.Recommend(selection, chosenCase, store.Headphones())
	if err != nil {
		return err
	}

	printResult(result, chosenCase)
	return nil
}

func printResult(result *recommend.Result, useCase string) {
	fmt.Printf("Your profile: avg loudness %.2f dB, avg energy %.2f\n",
		result.Profile.AvgLoudness, result.Profile.AvgEnergy)

	if result.Empty() {
		fmt.Printf("No headphones match the %q use case.\n", useCase)
		return
	}

	result.Tiers(func(tier headphone.PriceTier, hs []headphone.Headphone) {
		fmt.Printf("\n%s\n", tier)
		if len(hs) == 0 {
			fmt.Println("  (none)")
			return
		}
		for i, h := range hs {
			fmt.Printf("  %d. %s - rated %.1f (%d reviews)\n", i+1, h, h.UserRating, h.UserReviews)
		}
	})

	if h := result.MostReviewed; h != nil {
		fmt.Printf("\nMost reviewed pick: %s - rated %.1f across %d reviews\n",
			h, h.UserRating, h.UserReviews)
	}
}

func runGenres(cfg *config.Config) error {
	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	for _, g := range store.Genres() {
		fmt.Printf("%-16s %d songs\n", g.Genre, g.Count)
	}
	return nil
}

func runSongs(cfg *config.Config, genre, search string, limit int) error {
	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	songs := store.Songs()
	if genre != "" {
		songs = store.SongsByGenre(genre)
	}

	query := strings.ToLower(search)
	printed := 0
	for _, s := range songs {
		if query != "" &&
			!strings.Contains(strings.ToLower(s.Name), query) &&
			!strings.Contains(strings.ToLower(s.Artist), query) {
			continue
		}
		fmt.Printf("%s  %s\n", s.TrackID, s)
		printed++
		if limit > 0 && printed >= limit {
			break
		}
	}
	if printed == 0 {
		fmt.Println("No songs found.")
	}
	return nil
}

// runCheck verifies both data files load and reports their shape.
func runCheck(cfg *config.Config) error {
	for _, file := range []struct {
		label string
		path  string
	}{
		{"songs", cfg.Data.Songs},
		{"headphones", cfg.Data.Headphones},
	} {
		cols, err := catalog.Columns(file.path)
		if err != nil {
			return errors.Wrapf(err, "%s file %s", file.label, file.path)
		}
		fmt.Printf("%s (%s): columns %s\n", file.label, file.path, strings.Join(cols, ", "))
	}

	songs, songsSkipped, err := catalog.LoadSongs(cfg.Data.Songs)
	if err != nil {
		return err
	}
	fmt.Printf("songs: %d loaded, %d skipped\n", len(songs), songsSkipped)

	headphones, hpSkipped, err := catalog.LoadHeadphones(cfg.Data.Headphones)
	if err != nil {
		return err
	}
	fmt.Printf("headphones: %d loaded, %d skipped\n", len(headphones), hpSkipped)

	return nil
}
