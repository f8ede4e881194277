/*
Package catalog holds the hand-authored sections of the site and builds
the backend endpoints they are loaded from.
*/
package catalog

import (
	"fmt"
	"net/url"

	"github.com/kinetsulist/kinetsulist/pkg/models"
)

const (
	UserIDParam        = "id_usuario"
	predictionEndpoint = "/api/predecir-anime"
)

var galleries = []models.Section{
	{
		ID:         "mi-lista",
		Title:      "Mi Lista",
		Endpoint:   "/api/mi-lista",
		Field:      "animes",
		Mode:       models.RenderRow,
		UserScoped: true,
	},
	{
		ID:         "recomendaciones",
		Title:      "Nuestras Recomendaciones",
		Endpoint:   "/api/recomendaciones",
		Field:      "recomendaciones",
		Mode:       models.RenderRow,
		UserScoped: true,
	},
	{
		ID:         "joyas",
		Title:      "Joyas de todos los tiempos",
		Endpoint:   "/api/joyas-ocultas",
		Field:      "hidden_gems",
		Mode:       models.RenderRow,
		UserScoped: true,
	},
}

var categories = []models.Section{
	{
		ID:       "proyectar",
		Title:    "Proyectar Éxito",
		Subtitle: "Los animes con más tendencia",
		Icon:     "📈",
		Accent:   "from-pink-500 to-red-500",
		Endpoint: "/api/proyectar-exito",
		Field:    "trending",
		Mode:     models.RenderGrid,
	},
	{
		ID:       "pronostico",
		Title:    "Pronóstico de Rating",
		Subtitle: "Los mejor valorados",
		Icon:     "⭐",
		Accent:   "from-yellow-400 to-orange-500",
		Endpoint: "/api/pronostico-rating",
		Field:    "high_rated",
		Mode:     models.RenderGrid,
	},
	{
		ID:         "joyas",
		Title:      "Joyas Ocultas",
		Subtitle:   "Títulos que merecen más atención",
		Icon:       "💎",
		Accent:     "from-cyan-400 to-blue-600",
		Endpoint:   "/api/joyas-ocultas",
		Field:      "hidden_gems",
		Mode:       models.RenderGrid,
		UserScoped: true,
	},
	{
		ID:       "mapa",
		Title:    "Mapa de Nichos",
		Subtitle: "Explora por género",
		Icon:     "🗺️",
		Accent:   "from-green-400 to-emerald-600",
		Endpoint: "/api/mapa-nichos",
		Field:    "genres",
		Mode:     models.RenderGenres,
	},
}

/*
Galleries returns the rows shown on the browse page, in display order.
*/
func Galleries() []models.Section {
	return append([]models.Section{}, galleries...)
}

/*
Categories returns the cards shown in the section browser, in display order.
*/
func Categories() []models.Section {
	return append([]models.Section{}, categories...)
}

func FindGallery(id string) (models.Section, bool) {
	return find(galleries, id)
}

func FindCategory(id string) (models.Section, bool) {
	return find(categories, id)
}

func find(sections []models.Section, id string) (models.Section, bool) {
	for _, s := range sections {
		if s.ID == id {
			return s, true
		}
	}

	return models.Section{}, false
}

/*
EndpointFor returns the backend path for a section. The visitor's user ID
is appended only when one was supplied and the section accepts user
scoping.
*/
func EndpointFor(section models.Section, userID string) string {
	if userID == "" || !section.UserScoped {
		return section.Endpoint
	}

	return withUserID(section.Endpoint, userID)
}

/*
PredictionEndpointFor returns the prediction path for one anime. The
prediction endpoint always accepts an optional user ID.
*/
func PredictionEndpointFor(animeID, userID string) string {
	endpoint := fmt.Sprintf("%s/%s", predictionEndpoint, url.PathEscape(animeID))

	if userID == "" {
		return endpoint
	}

	return withUserID(endpoint, userID)
}

func withUserID(endpoint, userID string) string {
	q := url.Values{}
	q.Set(UserIDParam, userID)
	return endpoint + "?" + q.Encode()
}
