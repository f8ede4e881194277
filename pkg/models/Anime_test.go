package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAnime_FallbackChains(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want Anime
	}{
		{
			name: "primary keys",
			raw: map[string]any{
				"id_anime":        float64(20),
				"titulo_anime":    "Naruto",
				"puntuacion":      8.5,
				"total_episodios": float64(220),
				"image_url":       "https://img.example/naruto.jpg",
				"preview_url":     "https://video.example/naruto.mp4",
			},
			want: Anime{
				ID:         "20",
				Title:      "Naruto",
				Score:      "8.5",
				Episodes:   "220",
				ImageURL:   "https://img.example/naruto.jpg",
				PreviewURL: "https://video.example/naruto.mp4",
			},
		},
		{
			name: "secondary keys",
			raw: map[string]any{
				"nombre_anime":       "Bleach",
				"puntuacion_usuario": "9",
				"episodes":           float64(366),
				"img_url":            "https://img.example/bleach.jpg",
				"trailer_url":        "https://video.example/bleach.mp4",
			},
			want: Anime{
				Title:      "Bleach",
				Score:      "9",
				Episodes:   "366",
				ImageURL:   "https://img.example/bleach.jpg",
				PreviewURL: "https://video.example/bleach.mp4",
			},
		},
		{
			name: "empty values fall through to the next key",
			raw: map[string]any{
				"titulo_anime": "",
				"name":         "One Piece",
				"puntuacion":   nil,
				"rating":       7.0,
			},
			want: Anime{
				Title:    "One Piece",
				Score:    "7",
				ImageURL: DefaultPosterURL,
			},
		},
		{
			name: "defaults",
			raw:  map[string]any{},
			want: Anime{
				Title:    DefaultAnimeTitle,
				ImageURL: DefaultPosterURL,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAnime(tt.raw))
		})
	}
}

func TestNormalizeAnime_Genres(t *testing.T) {
	fromList := NormalizeAnime(map[string]any{"generos": []any{"Acción", "", "Drama"}})
	assert.Equal(t, []string{"Acción", "Drama"}, fromList.Genres)

	fromString := NormalizeAnime(map[string]any{"genres": "Comedy, Romance ,"})
	assert.Equal(t, []string{"Comedy", "Romance"}, fromString.Genres)
}

func TestAnime_ListKey(t *testing.T) {
	assert.Equal(t, "42", Anime{ID: "42", Title: "Monster"}.ListKey())
	assert.Equal(t, "Monster", Anime{Title: "Monster"}.ListKey())
}

func TestNormalizeAnimes(t *testing.T) {
	result := NormalizeAnimes([]map[string]any{
		{"titulo_anime": "A"},
		{"name": "B"},
	})

	assert.Len(t, result, 2)
	assert.Equal(t, "A", result[0].Title)
	assert.Equal(t, "B", result[1].Title)
}
