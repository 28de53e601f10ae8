package recommend

import "github.com/musicmatch/musicmatch/internal/domain/headphone"

// Result is the output of a single recommendation run: up to three
// headphones per price tier, ranked best-first, plus the optional "most
// reviewed" highlight. A Result is rebuilt fresh on every call and owned
// entirely by the caller.
type Result struct {
	// Profile is the aggregate musical profile the scoring used.
	Profile Profile

	// MostReviewed is the tiered headphone with the highest
	// rating * review count, nil when no headphone matched.
	MostReviewed *headphone.Headphone

	tiers map[headphone.PriceTier][]headphone.Headphone
}

// Tier returns the ranked headphones bucketed into the given tier.
// Missing tiers yield an empty slice.
func (r *Result) Tier(t headphone.PriceTier) []headphone.Headphone {
	return r.tiers[t]
}

// Tiers walks the buckets in the fixed headphone.TierOrder, calling fn for
// each tier including empty ones.
func (r *Result) Tiers(fn func(t headphone.PriceTier, hs []headphone.Headphone)) {
	for _, t := range headphone.TierOrder {
		fn(t, r.tiers[t])
	}
}

// Empty reports whether no headphone matched the use case at all.
func (r *Result) Empty() bool {
	for _, hs := range r.tiers {
		if len(hs) > 0 {
			return false
		}
	}
	return true
}
