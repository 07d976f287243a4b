package domain

// Temperature values for a color profile.
const (
	TemperatureWarm    = "warm"
	TemperatureCool    = "koel"
	TemperatureNeutral = "neutraal"
)

// Chroma values.
const (
	ChromaSoft   = "zacht"
	ChromaMedium = "gemiddeld"
	ChromaBold   = "gedurfd"
)

// Contrast and value levels.
const (
	LevelLow    = "laag"
	LevelMedium = "medium"
	LevelHigh   = "hoog"
)

// ColorProfile describes a user's derived color preferences.
type ColorProfile struct {
	Temperature string `json:"temperature"`
	// Value is the overall light/dark bucket, derived from contrast.
	Value       string   `json:"value"`
	Contrast    string   `json:"contrast"`
	Chroma      string   `json:"chroma"`
	Season      string   `json:"season"`
	PaletteName string   `json:"palette_name"`
	Notes       []string `json:"notes"`
}

// DataSource records which signals produced a style profile.
type DataSource string

const (
	DataSourceQuizAndSwipes DataSource = "quiz+swipes"
	DataSourceQuizOnly      DataSource = "quiz_only"
	DataSourceSwipesOnly    DataSource = "swipes_only"
	DataSourceFallback      DataSource = "fallback"
)

// StyleProfileResult bundles the color profile with the detected
// archetypes, translated to the user-facing Dutch taxonomy.
type StyleProfileResult struct {
	// Archetype is the primary archetype's Dutch display name.
	Archetype string `json:"archetype"`
	// SecondaryArchetype is the Dutch name of the secondary archetype,
	// empty when none was significant.
	SecondaryArchetype string                   `json:"secondary_archetype,omitempty"`
	ColorProfile       ColorProfile             `json:"color_profile"`
	Detection          ArchetypeDetectionResult `json:"detection"`
	// Confidence is max(color confidence, archetype confidence).
	Confidence float64    `json:"confidence"`
	DataSource DataSource `json:"data_source"`
}
