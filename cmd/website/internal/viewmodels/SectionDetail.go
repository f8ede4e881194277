package viewmodels

import (
	"github.com/kinetsulist/kinetsulist/pkg/backend"
	"github.com/kinetsulist/kinetsulist/pkg/models"
)

const (
	SectionErrorMessage       = "Error al cargar la sección. Intenta de nuevo."
	SectionEmptyAnimesMessage = "No se encontraron animes en esta sección"
	SectionEmptyGenresMessage = "No se encontraron géneros"
)

type SectionDetail struct {
	Section models.Section
	Cards   []Card
	Genres  []GenreTag
	IsError bool
	Message string
}

type GenreTag struct {
	Name     string
	URL      string
	Selected bool
}

/*
NewSectionDetail picks what the detail panel shows from the section's
render mode. Empty payloads get the empty-state message for that mode.
*/
func NewSectionDetail(section models.Section, payload backend.SectionPayload, err error, saved map[string]bool, userID, selectedGenre string) SectionDetail {
	result := SectionDetail{
		Section: section,
		Cards:   []Card{},
		Genres:  []GenreTag{},
	}

	if err != nil {
		result.IsError = true
		result.Message = SectionErrorMessage
		return result
	}

	if section.IsGenreList() {
		for _, genre := range payload.Genres {
			result.Genres = append(result.Genres, GenreTag{
				Name:     genre,
				URL:      sectionURL(section, userID, genre),
				Selected: genre == selectedGenre,
			})
		}

		if len(result.Genres) == 0 {
			result.Message = SectionEmptyGenresMessage
		}

		return result
	}

	result.Cards = NewCards(payload.Animes, saved, userID)

	if len(result.Cards) == 0 {
		result.Message = SectionEmptyAnimesMessage
	}

	return result
}
