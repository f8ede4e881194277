package viewmodels

import (
	"html/template"
	"net/url"

	"github.com/kinetsulist/kinetsulist/pkg/catalog"
	"github.com/kinetsulist/kinetsulist/pkg/models"
)

type SectionsPage struct {
	BaseViewModel

	UserID string
	Cards  []template.HTML
}

type SectionCard struct {
	Section models.Section
	LoadURL string
}

func NewSectionCards(sections []models.Section, userID string) []SectionCard {
	result := make([]SectionCard, 0, len(sections))

	for _, section := range sections {
		result = append(result, SectionCard{
			Section: section,
			LoadURL: sectionURL(section, userID, ""),
		})
	}

	return result
}

func sectionURL(section models.Section, userID, genre string) string {
	u := "/secciones/" + url.PathEscape(section.ID)
	q := url.Values{}

	if userID != "" {
		q.Set(catalog.UserIDParam, userID)
	}

	if genre != "" {
		q.Set("genero", genre)
	}

	if len(q) == 0 {
		return u
	}

	return u + "?" + q.Encode()
}
