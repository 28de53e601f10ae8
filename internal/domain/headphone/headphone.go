// Package headphone provides the Headphone domain entity and price tiers.
package headphone

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/mapstructure"
)

// ErrValidation marks errors from record construction: a raw field could not
// be coerced to its declared type. Callers classify with errors.Is.
var ErrValidation = errors.New("headphone record validation failed")

// PriceTier represents one of the three fixed price bands used to bucket
// ranked recommendations.
type PriceTier string

const (
	TierBudget   PriceTier = "Budget-Friendly"  // price < 150
	TierPremium  PriceTier = "Best of the Line" // price > 400
	TierBalanced PriceTier = "Best of Both"     // 150 <= price <= 400
)

// TierOrder is the fixed iteration order over tiers. Result rendering and
// the highlight tie-break both depend on this order staying stable.
var TierOrder = []PriceTier{TierBudget, TierPremium, TierBalanced}

// Headphone represents one headphone model with its specifications and
// social-proof metrics. Immutable after construction.
type Headphone struct {
	HeadphoneID       string
	Brand             string
	Model             string
	Price             float64
	Type              string // e.g. "Over-ear", "In-ear"; free-form
	UseCase           string // Workout / Casual / Studio / Gaming
	BassLevel         string // Low / Medium / High
	SoundProfile      string // Balanced / Bass-heavy / Flat, or free-form
	NoiseCancellation bool
	UserRating        float64 // 0.0-5.0
	UserReviews       int
}

// rawRecord is the decode target for loader rows. noise_cancellation stays a
// string here: only the literal "Yes" means true, which weak typing would
// not express.
type rawRecord struct {
	HeadphoneID       string  `mapstructure:"headphone_id"`
	Brand             string  `mapstructure:"brand"`
	Model             string  `mapstructure:"model"`
	Price             float64 `mapstructure:"price"`
	Type              string  `mapstructure:"type"`
	UseCase           string  `mapstructure:"use_case"`
	BassLevel         string  `mapstructure:"bass_level"`
	SoundProfile      string  `mapstructure:"sound_profile"`
	NoiseCancellation string  `mapstructure:"noise_cancellation"`
	UserRating        float64 `mapstructure:"user_rating"`
	UserReviews       int     `mapstructure:"user_reviews"`
}

// New builds a Headphone from a raw loader row (column name -> cell value).
// Numeric cells are coerced to their declared types; a cell that cannot be
// coerced fails with an error marked ErrValidation.
func New(raw map[string]string) (Headphone, error) {
	var r rawRecord

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &r,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Headphone{}, errors.Wrap(err, "failed to create decoder")
	}

	if err := decoder.Decode(raw); err != nil {
		return Headphone{}, errors.Mark(
			errors.Wrapf(err, "headphone %q", raw["headphone_id"]),
			ErrValidation,
		)
	}

	return Headphone{
		HeadphoneID:       r.HeadphoneID,
		Brand:             r.Brand,
		Model:             r.Model,
		Price:             r.Price,
		Type:              r.Type,
		UseCase:           r.UseCase,
		BassLevel:         r.BassLevel,
		SoundProfile:      r.SoundProfile,
		NoiseCancellation: r.NoiseCancellation == "Yes",
		UserRating:        r.UserRating,
		UserReviews:       r.UserReviews,
	}, nil
}

// MatchesUseCase checks if the headphone matches the use case.
// Case-insensitive exact equality; no partial matching, no synonyms.
func (h Headphone) MatchesUseCase(useCase string) bool {
	return strings.EqualFold(h.UseCase, useCase)
}

// PriceTier returns the price band this headphone falls into.
// Boundaries: 150 and 400 both belong to TierBalanced.
func (h Headphone) PriceTier() PriceTier {
	switch {
	case h.Price < 150:
		return TierBudget
	case h.Price > 400:
		return TierPremium
	default:
		return TierBalanced
	}
}

// String returns the display form of the headphone.
func (h Headphone) String() string {
	return fmt.Sprintf("%s %s - $%g (%s)", h.Brand, h.Model, h.Price, h.UseCase)
}
