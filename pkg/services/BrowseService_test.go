package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/kinetsulist/kinetsulist/pkg/backend"
	"github.com/kinetsulist/kinetsulist/pkg/catalog"
	"github.com/kinetsulist/kinetsulist/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackendClient struct {
	mu       sync.Mutex
	calls    []string
	payloads map[string]backend.SectionPayload
	failures map[string]bool
}

func (f *fakeBackendClient) FetchSection(ctx context.Context, section models.Section, userID string) (backend.SectionPayload, error) {
	f.mu.Lock()
	f.calls = append(f.calls, catalog.EndpointFor(section, userID))
	f.mu.Unlock()

	if f.failures[section.ID] {
		return backend.SectionPayload{}, fmt.Errorf("%w: boom", backend.ErrFetch)
	}

	return f.payloads[section.ID], nil
}

func (f *fakeBackendClient) Predict(ctx context.Context, animeID, userID string) (models.Prediction, error) {
	return models.Prediction{}, nil
}

func TestBrowseService_LoadRowsIsolatesFailures(t *testing.T) {
	client := &fakeBackendClient{
		payloads: map[string]backend.SectionPayload{
			"mi-lista": {Animes: []models.Anime{{ID: "1", Title: "Naruto"}}},
			"joyas":    {Animes: []models.Anime{{ID: "2", Title: "Mushishi"}}},
		},
		failures: map[string]bool{
			"recomendaciones": true,
		},
	}

	service := NewBrowseService(BrowseServiceConfig{BackendClient: client, MaxFetchWorkers: 2})
	results := service.LoadRows(context.Background(), catalog.Galleries(), "42")

	require.Len(t, results, 3)

	assert.Equal(t, "mi-lista", results[0].Section.ID)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, "Naruto", results[0].Payload.Animes[0].Title)

	assert.Equal(t, "recomendaciones", results[1].Section.ID)
	assert.ErrorIs(t, results[1].Err, backend.ErrFetch)
	assert.True(t, results[1].Payload.IsEmpty())

	assert.Equal(t, "joyas", results[2].Section.ID)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, "Mushishi", results[2].Payload.Animes[0].Title)

	assert.ElementsMatch(t, []string{
		"/api/mi-lista?id_usuario=42",
		"/api/recomendaciones?id_usuario=42",
		"/api/joyas-ocultas?id_usuario=42",
	}, client.calls)
}

func TestBrowseService_LoadRowIssuesOneRequest(t *testing.T) {
	client := &fakeBackendClient{}
	service := NewBrowseService(BrowseServiceConfig{BackendClient: client})

	section, _ := catalog.FindCategory("mapa")
	result := service.LoadRow(context.Background(), section, "42")

	assert.NoError(t, result.Err)
	assert.True(t, result.Payload.IsEmpty())
	assert.Equal(t, []string{"/api/mapa-nichos"}, client.calls)
}
