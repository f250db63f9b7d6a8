package web

import (
	"fmt"

	domain "github.com/inference-gateway/coordpick/internal/domain"
)

// CardView is the visual projection of one gallery entry
type CardView struct {
	ID          uint64       `json:"id"`
	ImageURL    string       `json:"image_url"`
	Alt         string       `json:"alt"`
	Caption     string       `json:"caption"`
	Placeholder bool         `json:"placeholder"`
	NaturalSize *domain.Size `json:"natural_size,omitempty"`
}

// GalleryView is the visual projection of the whole gallery
type GalleryView struct {
	Mode  domain.Mode `json:"mode"`
	Cards []CardView  `json:"cards"`
	Empty bool        `json:"empty"`
}

// RenderCard projects an entry. It has no side effects.
func RenderCard(entry domain.GalleryEntry, logical domain.Size) CardView {
	card := CardView{
		ID:          entry.ID,
		ImageURL:    fmt.Sprintf("/api/images/%d/source", entry.ID),
		Alt:         "Uploaded image",
		Placeholder: entry.Placeholder,
	}

	switch entry.Mode {
	case domain.ModeDeferred:
		card.Caption = "Original size • Click to copy coordinates"
		if size, ok := entry.NaturalSize(); ok {
			card.NaturalSize = &size
		}
	default:
		card.Caption = fmt.Sprintf("Resized to %s • Click to copy coordinates", logical)
	}

	return card
}

// RenderGallery projects the ordered entry list; the same list always yields the same view
func RenderGallery(mode domain.Mode, entries []domain.GalleryEntry, logical domain.Size) GalleryView {
	view := GalleryView{
		Mode:  mode,
		Cards: make([]CardView, 0, len(entries)),
		Empty: len(entries) == 0,
	}
	for _, e := range entries {
		view.Cards = append(view.Cards, RenderCard(e, logical))
	}
	return view
}
