package models

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultAnimeTitle = "Sin título"
	DefaultPosterURL  = "/static/img/imagen_no_encontrada.png"
)

/*
Field fallback chains for backend anime records. Endpoints do not agree
on a single shape, so each value is read from the first key that holds
something usable.
*/
var (
	animeIDKeys       = []string{"id_anime", "id", "anime_id", "mal_id"}
	animeTitleKeys    = []string{"titulo_anime", "nombre_anime", "name", "titulo", "title"}
	animeScoreKeys    = []string{"puntuacion", "puntuacion_usuario", "rating", "score"}
	animeEpisodesKeys = []string{"total_episodios", "episodes"}
	animeImageKeys    = []string{"image_url", "img_url"}
	animePreviewKeys  = []string{"preview_url", "trailer_url"}
	animeGenresKeys   = []string{"generos", "genres"}
)

type Anime struct {
	ID         string
	Title      string
	Score      string
	Episodes   string
	ImageURL   string
	PreviewURL string
	Genres     []string
}

/*
ListKey is the identifier used when the anime is saved to a visitor's
list. Records without an ID are keyed by title.
*/
func (a Anime) ListKey() string {
	if a.ID != "" {
		return a.ID
	}

	return a.Title
}

func (a Anime) HasPreview() bool {
	return a.PreviewURL != ""
}

/*
NormalizeAnime maps any accepted backend record shape into an Anime.
*/
func NormalizeAnime(raw map[string]any) Anime {
	result := Anime{
		ID:         firstValue(raw, animeIDKeys),
		Title:      firstValue(raw, animeTitleKeys),
		Score:      firstValue(raw, animeScoreKeys),
		Episodes:   firstValue(raw, animeEpisodesKeys),
		ImageURL:   firstValue(raw, animeImageKeys),
		PreviewURL: firstValue(raw, animePreviewKeys),
		Genres:     firstList(raw, animeGenresKeys),
	}

	if result.Title == "" {
		result.Title = DefaultAnimeTitle
	}

	if result.ImageURL == "" {
		result.ImageURL = DefaultPosterURL
	}

	return result
}

func NormalizeAnimes(raw []map[string]any) []Anime {
	result := make([]Anime, 0, len(raw))

	for _, r := range raw {
		result = append(result, NormalizeAnime(r))
	}

	return result
}

func firstValue(raw map[string]any, keys []string) string {
	for _, key := range keys {
		if s := FormatValue(raw[key]); s != "" {
			return s
		}
	}

	return ""
}

func firstList(raw map[string]any, keys []string) []string {
	for _, key := range keys {
		switch v := raw[key].(type) {
		case []any:
			result := []string{}

			for _, item := range v {
				if s := FormatValue(item); s != "" {
					result = append(result, s)
				}
			}

			if len(result) > 0 {
				return result
			}

		case string:
			result := []string{}

			for _, part := range strings.Split(v, ",") {
				if part = strings.TrimSpace(part); part != "" {
					result = append(result, part)
				}
			}

			if len(result) > 0 {
				return result
			}
		}
	}

	return nil
}

/*
FormatValue renders a decoded JSON scalar as display text. Numbers drop
trailing zeros so 8.50 shows as 8.5 and 24.0 as 24. Zero values, empty
strings and non-scalars yield "".
*/
func FormatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""

	case string:
		return strings.TrimSpace(value)

	case float64:
		if value == 0 {
			return ""
		}

		return strconv.FormatFloat(value, 'f', -1, 64)

	case int:
		if value == 0 {
			return ""
		}

		return strconv.Itoa(value)

	case int64:
		if value == 0 {
			return ""
		}

		return strconv.FormatInt(value, 10)

	case bool:
		return ""

	case map[string]any, []any:
		return ""

	default:
		return fmt.Sprint(value)
	}
}
