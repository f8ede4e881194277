package viewmodels

import (
	"net/url"

	"github.com/kinetsulist/kinetsulist/pkg/catalog"
	"github.com/kinetsulist/kinetsulist/pkg/models"
)

const (
	RowErrorMessage = "Error al cargar"
	RowEmptyMessage = "No hay animes para mostrar"
)

type Row struct {
	Section models.Section
	LoadURL string
	Loaded  bool
	Cards   []Card
	IsError bool
	Message string
}

func NewSkeletonRow(section models.Section, userID string) Row {
	return Row{
		Section: section,
		LoadURL: rowURL(section, userID),
	}
}

/*
NewLoadedRow builds the row for a finished load. A failed load only
carries the error message.
*/
func NewLoadedRow(section models.Section, animes []models.Anime, err error, saved map[string]bool, userID string) Row {
	result := Row{
		Section: section,
		LoadURL: rowURL(section, userID),
		Loaded:  true,
		Cards:   []Card{},
	}

	if err != nil {
		result.IsError = true
		result.Message = RowErrorMessage
		return result
	}

	result.Cards = NewCards(animes, saved, userID)

	if len(result.Cards) == 0 {
		result.Message = RowEmptyMessage
	}

	return result
}

func rowURL(section models.Section, userID string) string {
	u := "/rows/" + url.PathEscape(section.ID)

	if userID == "" {
		return u
	}

	q := url.Values{}
	q.Set(catalog.UserIDParam, userID)
	return u + "?" + q.Encode()
}
