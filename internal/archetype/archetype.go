// Package archetype owns the fixed style-archetype taxonomy and the lookup
// tables derived from it.
//
// The tables are deliberately kept as data rather than logic so their
// completeness can be asserted in tests: every archetype has a weight key,
// a Dutch display name, a similarity entry, and a swipe-tag vocabulary.
package archetype

// Key identifies an archetype in the fixed taxonomy.
type Key string

// The six canonical archetypes.
const (
	Minimalist  Key = "MINIMALIST"
	Streetwear  Key = "STREETWEAR"
	Athletic    Key = "ATHLETIC"
	Classic     Key = "CLASSIC"
	SmartCasual Key = "SMART_CASUAL"
	AvantGarde  Key = "AVANT_GARDE"
)

// Descriptor carries the static characteristics of one archetype.
type Descriptor struct {
	Key Key

	// WeightKey is the lower-case token used in photo archetype_weights
	// and embedding maps ("minimal", "smart_casual", ...).
	WeightKey string

	// Dutch is the display name handed to the downstream recommendation
	// engine.
	Dutch string

	// Silhouettes are fit keywords that signal this archetype in quiz
	// answers.
	Silhouettes []string

	// SwipeTags is the tag vocabulary counted across liked photos.
	SwipeTags []string
}

// descriptors is ordered; iteration order determines tie-breaks when
// scores are equal.
//
//nolint:gochecknoglobals // Static taxonomy
var descriptors = []Descriptor{
	{
		Key:         Minimalist,
		WeightKey:   "minimal",
		Dutch:       "minimalistisch",
		Silhouettes: []string{"slim", "straight", "clean"},
		SwipeTags:   []string{"minimal", "clean", "effen", "simpel", "monochrome"},
	},
	{
		Key:         Streetwear,
		WeightKey:   "streetwear",
		Dutch:       "streetstyle",
		Silhouettes: []string{"oversized", "relaxed", "boxy"},
		SwipeTags:   []string{"street", "urban", "oversized", "hoodie", "sneaker", "casual", "relaxed"},
	},
	{
		Key:         Athletic,
		WeightKey:   "athletic",
		Dutch:       "sportief",
		Silhouettes: []string{"fitted", "stretch", "sportief"},
		SwipeTags:   []string{"sport", "athletic", "performance", "tech", "training", "actief"},
	},
	{
		Key:         Classic,
		WeightKey:   "classic",
		Dutch:       "klassiek",
		Silhouettes: []string{"tailored", "slim", "structured"},
		SwipeTags:   []string{"classic", "tailored", "preppy", "refined", "smart"},
	},
	{
		Key:         SmartCasual,
		WeightKey:   "smart_casual",
		Dutch:       "casual_chic",
		Silhouettes: []string{"tailored", "relaxed", "straight"},
		SwipeTags:   []string{"smart", "polished", "elevated", "contemporary"},
	},
	{
		Key:         AvantGarde,
		WeightKey:   "avant_garde",
		Dutch:       "avant_garde",
		Silhouettes: []string{"oversized", "asymmetric", "draped"},
		SwipeTags:   []string{"avant", "conceptual", "asymmetric", "drape", "statement"},
	},
}

// similarity maps a weight key to the weight keys considered adjacent when
// the adaptive loader selects preferred photos.
//
//nolint:gochecknoglobals // Static lookup table
var similarity = map[string][]string{
	"minimal":      {"classic", "refined", "monochrome", "contemporary"},
	"streetwear":   {"urban", "casual", "athletic", "relaxed"},
	"athletic":     {"streetwear", "performance", "sporty", "casual"},
	"classic":      {"minimal", "refined", "preppy", "smart_casual"},
	"smart_casual": {"classic", "refined", "polished", "contemporary"},
	"avant_garde":  {"statement", "artistic", "conceptual", "streetwear"},
}

// All returns the taxonomy in canonical order.
func All() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// ByKey returns the descriptor for key.
func ByKey(key Key) (Descriptor, bool) {
	for _, d := range descriptors {
		if d.Key == key {
			return d, true
		}
	}
	return Descriptor{}, false
}

// ByWeightKey returns the descriptor whose weight key matches.
func ByWeightKey(weightKey string) (Descriptor, bool) {
	for _, d := range descriptors {
		if d.WeightKey == weightKey {
			return d, true
		}
	}
	return Descriptor{}, false
}

// WeightKeys returns the canonical weight keys in taxonomy order.
func WeightKeys() []string {
	out := make([]string, len(descriptors))
	for i, d := range descriptors {
		out[i] = d.WeightKey
	}
	return out
}

// SimilarTo returns the weight keys adjacent to the given one. The result
// never includes the key itself.
func SimilarTo(weightKey string) []string {
	sim, ok := similarity[weightKey]
	if !ok {
		return nil
	}
	out := make([]string, len(sim))
	copy(out, sim)
	return out
}

// Dutch translates an archetype key to its Dutch display name. Unknown
// keys pass through unchanged.
func Dutch(key Key) string {
	if d, ok := ByKey(key); ok {
		return d.Dutch
	}
	return string(key)
}
