package prediction

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/kinetsulist/kinetsulist/cmd/website/internal/fragments"
	"github.com/kinetsulist/kinetsulist/pkg/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupController(t *testing.T, status int, body string) (http.Handler, *[]string) {
	t.Helper()

	requests := []string{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.RequestURI())
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	renderer, err := fragments.NewFragmentRenderer()
	require.NoError(t, err)

	controller := NewPredictionController(PredictionControllerConfig{
		BackendClient: backend.NewClient(backend.ClientConfig{BaseURL: server.URL}),
		Fragments:     renderer,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /predecir/{id}", controller.Predict)

	return mux, &requests
}

func TestPredict_RendersModal(t *testing.T) {
	handler, requests := setupController(t, http.StatusOK, `{
		"probabilidad": 0.25,
		"porcentaje": "25%",
		"prediccion": "No",
		"mensaje": "Quizás no sea para ti"
	}`)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/predecir/31?titulo=Berserk&id_usuario=9", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []string{"/api/predecir-anime/31?id_usuario=9"}, *requests)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(recorder.Body.String()))
	require.NoError(t, err)

	style, _ := doc.Find(".prediction-content").Attr("style")
	assert.Contains(t, style, "90deg")
	assert.Equal(t, "Berserk", strings.TrimSpace(doc.Find("h3").Text()))
	assert.Equal(t, "✗ NO", strings.TrimSpace(doc.Find(".prediction-value").Text()))
	assert.Equal(t, "Quizás no sea para ti", strings.TrimSpace(doc.Find(".prediction-message").Text()))
}

func TestPredict_BackendFailure(t *testing.T) {
	handler, _ := setupController(t, http.StatusInternalServerError, `{}`)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/predecir/31", nil))

	assert.Equal(t, http.StatusBadGateway, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "prediction-modal")
}

func TestPredict_PathIDWinsOverQuery(t *testing.T) {
	handler, requests := setupController(t, http.StatusOK, `{"probabilidad": 0.5, "prediccion": "Sí"}`)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/predecir/20?id=99", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []string{"/api/predecir-anime/20"}, *requests)
}
