// Package recommend provides the preference-to-recommendation scoring engine.
//
// Given exactly five selected songs and a use case, the engine filters the
// headphone catalog, scores each candidate against the aggregate musical
// profile of the selection, ranks the candidates, and buckets the ranked
// list into three price tiers plus a single "most reviewed" highlight.
// The whole computation is a pure function of its inputs: no randomness,
// no hidden state, no mutation of the catalog or the selection.
package recommend

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/musicmatch/musicmatch/internal/domain/headphone"
	"github.com/musicmatch/musicmatch/internal/domain/song"
)

// ErrInvalidSelection marks precondition violations: wrong selection size,
// duplicate songs in the selection, or an empty use case. Callers classify
// with errors.Is.
var ErrInvalidSelection = errors.New("invalid selection")

// SelectionSize is the required number of songs per recommendation run.
const SelectionSize = 5

// Scoring weights and thresholds. The bass rule carries a catch-all +1 while
// the energy rule has no catch-all; the asymmetry is intentional tuning.
const (
	ratingWeight = 2.0

	loudBassFloor  = -4.0 // avg loudness above this prefers High bass
	quietBassCeil  = -7.0 // avg loudness below this prefers Low bass
	bassMatchBonus = 3.0
	bassOtherBonus = 1.0

	highEnergyFloor  = 0.7 // avg energy above this prefers Bass-heavy
	lowEnergyCeil    = 0.4 // avg energy below this prefers Flat
	energyMatchBonus = 2.0
)

const tierCap = 3

// Profile is the aggregate musical profile of a selection. Only mean
// loudness and mean energy feed the scoring formula; the other audio
// features are deliberately unused.
type Profile struct {
	AvgLoudness float64
	AvgEnergy   float64
}

// BuildProfile computes the aggregate profile of the given songs.
func BuildProfile(songs []song.Song) Profile {
	var loudness, energy float64
	for _, s := range songs {
		loudness += s.Loudness
		energy += s.Energy
	}
	n := float64(len(songs))
	return Profile{
		AvgLoudness: loudness / n,
		AvgEnergy:   energy / n,
	}
}

// Recommend scores the catalog against the selection and returns the tiered
// result. It fails with an error marked ErrInvalidSelection when the
// selection does not contain exactly five distinct songs or the use case is
// empty. Zero matching headphones is not an error: all tiers come back
// empty and the highlight is absent.
func Recommend(selection []song.Song, useCase string, catalog []headphone.Headphone) (*Result, error) {
	if err := validateSelection(selection, useCase); err != nil {
		return nil, err
	}

	profile := BuildProfile(selection)

	// Filter by use case, keeping catalog order. The original order is the
	// tie-break for equal scores, so it must survive the filter untouched.
	candidates := make([]headphone.Headphone, 0, len(catalog))
	for _, h := range catalog {
		if h.MatchesUseCase(useCase) {
			candidates = append(candidates, h)
		}
	}

	ranked := rank(candidates, profile)

	result := &Result{
		Profile: profile,
		tiers:   make(map[headphone.PriceTier][]headphone.Headphone, len(headphone.TierOrder)),
	}
	for _, h := range ranked {
		tier := h.PriceTier()
		if len(result.tiers[tier]) < tierCap {
			result.tiers[tier] = append(result.tiers[tier], h)
		}
	}
	result.MostReviewed = mostReviewed(result)

	return result, nil
}

// Score returns the score of a single headphone against the profile.
// Exposed for explainability in front ends; Recommend uses the same formula.
func Score(h headphone.Headphone, p Profile) float64 {
	score := h.UserRating * ratingWeight

	switch {
	case p.AvgLoudness > loudBassFloor && h.BassLevel == "High":
		score += bassMatchBonus
	case p.AvgLoudness < quietBassCeil && h.BassLevel == "Low":
		score += bassMatchBonus
	default:
		score += bassOtherBonus
	}

	switch {
	case p.AvgEnergy > highEnergyFloor && h.SoundProfile == "Bass-heavy":
		score += energyMatchBonus
	case p.AvgEnergy < lowEnergyCeil && h.SoundProfile == "Flat":
		score += energyMatchBonus
	}

	return score
}

// rank sorts candidates by score descending. The sort is stable so that
// candidates with equal scores keep their catalog order.
func rank(candidates []headphone.Headphone, p Profile) []headphone.Headphone {
	type scored struct {
		h     headphone.Headphone
		score float64
	}

	entries := make([]scored, len(candidates))
	for i, h := range candidates {
		entries[i] = scored{h: h, score: Score(h, p)}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].score > entries[j].score
	})

	ranked := make([]headphone.Headphone, len(entries))
	for i, e := range entries {
		ranked[i] = e.h
	}
	return ranked
}

// mostReviewed picks the highlight: the tiered headphone maximizing
// rating * review count. Tiers are walked in headphone.TierOrder and ties
// go to the first occurrence, so the pick is deterministic. Returns nil
// when every tier is empty.
func mostReviewed(r *Result) *headphone.Headphone {
	var best *headphone.Headphone
	var bestWeight float64

	for _, tier := range headphone.TierOrder {
		for i := range r.tiers[tier] {
			h := r.tiers[tier][i]
			weight := h.UserRating * float64(h.UserReviews)
			if best == nil || weight > bestWeight {
				best = &h
				bestWeight = weight
			}
		}
	}
	return best
}

// validateSelection enforces the engine preconditions. The UI layer is
// expected to have enforced them already, but callers are untrusted.
func validateSelection(selection []song.Song, useCase string) error {
	if len(selection) != SelectionSize {
		return errors.Mark(
			errors.Newf("selection must contain exactly %d songs, got %d", SelectionSize, len(selection)),
			ErrInvalidSelection,
		)
	}

	seen := make(map[string]struct{}, len(selection))
	for _, s := range selection {
		if _, dup := seen[s.TrackID]; dup {
			return errors.Mark(
				errors.Newf("duplicate song in selection: %s", s.TrackID),
				ErrInvalidSelection,
			)
		}
		seen[s.TrackID] = struct{}{}
	}

	if useCase == "" {
		return errors.Mark(
			errors.New("use case must not be empty"),
			ErrInvalidSelection,
		)
	}

	return nil
}
