package viewmodels

import (
	"encoding/json"
	"net/url"

	"github.com/kinetsulist/kinetsulist/pkg/catalog"
	"github.com/kinetsulist/kinetsulist/pkg/models"
)

type Card struct {
	Anime      models.Anime
	Saved      bool
	PredictURL string
	AddValues  string
}

/*
NewCards builds one card per anime. saved holds the list keys already on
the visitor's list.
*/
func NewCards(animes []models.Anime, saved map[string]bool, userID string) []Card {
	result := make([]Card, 0, len(animes))

	for _, anime := range animes {
		result = append(result, NewCard(anime, saved[anime.ListKey()], userID))
	}

	return result
}

func NewCard(anime models.Anime, saved bool, userID string) Card {
	result := Card{
		Anime: anime,
		Saved: saved,
	}

	if anime.ID != "" {
		q := url.Values{}
		q.Set("titulo", anime.Title)

		if userID != "" {
			q.Set(catalog.UserIDParam, userID)
		}

		result.PredictURL = "/predecir/" + url.PathEscape(anime.ID) + "?" + q.Encode()
	}

	b, _ := json.Marshal(map[string]string{
		"id":     anime.ListKey(),
		"titulo": anime.Title,
	})

	result.AddValues = string(b)
	return result
}

/*
ListKeys returns the saved-list keys of the given animes.
*/
func ListKeys(animes []models.Anime) []string {
	result := make([]string, 0, len(animes))

	for _, anime := range animes {
		result = append(result, anime.ListKey())
	}

	return result
}
