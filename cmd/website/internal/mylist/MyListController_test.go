package mylist

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/kinetsulist/kinetsulist/cmd/website/internal/fragments"
	"github.com/kinetsulist/kinetsulist/pkg/models"
	"github.com/kinetsulist/kinetsulist/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type memoryFavorites struct {
	mu        sync.Mutex
	favorites []models.Favorite
}

func (m *memoryFavorites) Add(visitorID, animeID, title string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, f := range m.favorites {
		if f.VisitorID == visitorID && f.AnimeID == animeID {
			return false, nil
		}
	}

	m.favorites = append(m.favorites, models.Favorite{VisitorID: visitorID, AnimeID: animeID, Title: title})
	return true, nil
}

func (m *memoryFavorites) Contains(visitorID string, animeIDs []string) (map[string]bool, error) {
	return map[string]bool{}, nil
}

func (m *memoryFavorites) List(visitorID string) ([]models.Favorite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := []models.Favorite{}

	for _, f := range m.favorites {
		if f.VisitorID == visitorID {
			result = append(result, f)
		}
	}

	return result, nil
}

func setupController(t *testing.T, favorites *memoryFavorites, visitor *models.Visitor) http.Handler {
	t.Helper()

	renderer, err := fragments.NewFragmentRenderer()
	require.NoError(t, err)

	controller := NewMyListController(MyListControllerConfig{
		ExportService:   services.NewExportService(),
		FavoriteService: favorites,
		Fragments:       renderer,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("POST /mi-lista", controller.AddAction)
	mux.HandleFunc("GET /mi-lista/exportar", controller.ExportAction)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if visitor != nil {
			r = r.WithContext(context.WithValue(r.Context(), "visitor", visitor))
		}

		mux.ServeHTTP(w, r)
	})
}

func postAdd(handler http.Handler, form url.Values) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, "/mi-lista", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestAddAction_IsIdempotent(t *testing.T) {
	favorites := &memoryFavorites{}
	handler := setupController(t, favorites, &models.Visitor{ID: "visitor-1"})

	form := url.Values{"id": {"20"}, "titulo": {"Naruto"}}

	for i := 0; i < 2; i++ {
		recorder := postAdd(handler, form)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "✓ Guardado")
		assert.Contains(t, recorder.Body.String(), "disabled")
	}

	saved, err := favorites.List("visitor-1")
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}

func TestAddAction_FallsBackToTitle(t *testing.T) {
	favorites := &memoryFavorites{}
	handler := setupController(t, favorites, &models.Visitor{ID: "visitor-1"})

	recorder := postAdd(handler, url.Values{"titulo": {"Monster"}})
	require.Equal(t, http.StatusOK, recorder.Code)

	saved, _ := favorites.List("visitor-1")
	require.Len(t, saved, 1)
	assert.Equal(t, "Monster", saved[0].AnimeID)
}

func TestAddAction_RequiresIdentifier(t *testing.T) {
	handler := setupController(t, &memoryFavorites{}, &models.Visitor{ID: "visitor-1"})

	recorder := postAdd(handler, url.Values{})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAddAction_RequiresVisitor(t *testing.T) {
	handler := setupController(t, &memoryFavorites{}, nil)

	recorder := postAdd(handler, url.Values{"id": {"20"}})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestExportAction(t *testing.T) {
	favorites := &memoryFavorites{}
	_, _ = favorites.Add("visitor-1", "20", "Naruto")
	_, _ = favorites.Add("visitor-2", "21", "Bleach")

	handler := setupController(t, favorites, &models.Visitor{ID: "visitor-1"})

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/mi-lista/exportar", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(recorder.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Mi Lista")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Naruto", rows[1][1])
}
