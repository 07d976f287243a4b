package service

import (
	"fmt"

	"github.com/fitfi/fitfi-server/internal/domain"
)

// QuickOutfitItem is one garment in a preview outfit.
type QuickOutfitItem struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Color    string `json:"color"`
	Style    string `json:"style"`
}

// QuickOutfit is the instant outfit preview shown right after a swipe
// session, before the full profile is generated.
type QuickOutfit struct {
	Top              QuickOutfitItem `json:"top"`
	Bottom           QuickOutfitItem `json:"bottom"`
	Footwear         QuickOutfitItem `json:"footwear"`
	Confidence       float64         `json:"confidence"`
	StyleDescription string          `json:"style_description"`
}

type outfitPiece struct {
	category string
	name     string
	color    string
}

type quickOutfitTemplate struct {
	top         outfitPiece
	bottom      outfitPiece
	footwear    outfitPiece
	description string
}

// quickOutfitTemplates holds one curated preview outfit per archetype
// weight key.
//
//nolint:gochecknoglobals // Static template table
var quickOutfitTemplates = map[string]quickOutfitTemplate{
	"minimal": {
		top:         outfitPiece{"top", "Wit basic T-shirt", "#FFFFFF"},
		bottom:      outfitPiece{"bottom", "Zwarte slim jeans", "#000000"},
		footwear:    outfitPiece{"footwear", "Witte sneakers", "#FFFFFF"},
		description: "Strak minimalistische look",
	},
	"classic": {
		top:         outfitPiece{"top", "Oxford overhemd", "#E8E8E8"},
		bottom:      outfitPiece{"bottom", "Chino broek", "#8B7355"},
		footwear:    outfitPiece{"footwear", "Leren loafers", "#5D4037"},
		description: "Tijdloze klassieke stijl",
	},
	"streetwear": {
		top:         outfitPiece{"top", "Hoodie", "#808080"},
		bottom:      outfitPiece{"bottom", "Cargo broek", "#2F4F4F"},
		footwear:    outfitPiece{"footwear", "High-top sneakers", "#000000"},
		description: "Urban streetstyle",
	},
	"athletic": {
		top:         outfitPiece{"top", "Sport T-shirt", "#00CED1"},
		bottom:      outfitPiece{"bottom", "Joggingbroek", "#2F4F4F"},
		footwear:    outfitPiece{"footwear", "Running shoes", "#FFFFFF"},
		description: "Sportieve comfort",
	},
	"smart_casual": {
		top:         outfitPiece{"top", "Gestructureerde blouse", "#F5F5DC"},
		bottom:      outfitPiece{"bottom", "Tailored broek", "#2C3E50"},
		footwear:    outfitPiece{"footwear", "Elegante pumps", "#000000"},
		description: "Verfijnde elegantie",
	},
	"avant_garde": {
		top:         outfitPiece{"top", "Statement blazer", "#DC143C"},
		bottom:      outfitPiece{"bottom", "Zwarte broek", "#000000"},
		footwear:    outfitPiece{"footwear", "Chunky boots", "#000000"},
		description: "Gedurfde statement look",
	},
}

// GenerateQuickOutfit builds a preview outfit for the pattern's top
// archetype. Returns nil when no archetype was detected or no template
// covers it.
func GenerateQuickOutfit(pattern domain.SwipePattern) *QuickOutfit {
	key := pattern.TopArchetype()
	if key == "" {
		return nil
	}
	template, ok := quickOutfitTemplates[key]
	if !ok {
		return nil
	}

	confidence := pattern.Confidence
	if confidence == 0 {
		confidence = 0.5
	}

	item := func(slot string, piece outfitPiece) QuickOutfitItem {
		return QuickOutfitItem{
			ID:       fmt.Sprintf("quick-%s-%s", slot, key),
			Category: piece.category,
			Name:     piece.name,
			ImageURL: fmt.Sprintf("/images/fallbacks/%s.jpg", slot),
			Color:    piece.color,
			Style:    key,
		}
	}

	return &QuickOutfit{
		Top:              item("top", template.top),
		Bottom:           item("bottom", template.bottom),
		Footwear:         item("footwear", template.footwear),
		Confidence:       confidence,
		StyleDescription: template.description,
	}
}

// StyleEmoji returns the client badge emoji for an archetype key.
func StyleEmoji(key string) string {
	switch key {
	case "minimal":
		return "⚪"
	case "classic":
		return "👔"
	case "streetwear":
		return "🏙️"
	case "athletic":
		return "⚽"
	case "smart_casual":
		return "✨"
	case "avant_garde":
		return "⚡"
	default:
		return "👗"
	}
}
