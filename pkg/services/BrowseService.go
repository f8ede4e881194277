package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/alitto/pond/v2"
	"github.com/kinetsulist/kinetsulist/pkg/backend"
	"github.com/kinetsulist/kinetsulist/pkg/models"
)

var ErrNotLoaded = errors.New("section was not loaded")

type BrowseServicer interface {
	LoadRow(ctx context.Context, section models.Section, userID string) RowResult
	LoadRows(ctx context.Context, sections []models.Section, userID string) []RowResult
}

/*
RowResult is the outcome of loading one section. Err is set when the
backend call failed, in which case the payload is empty.
*/
type RowResult struct {
	Section models.Section
	Payload backend.SectionPayload
	Err     error
}

type BrowseServiceConfig struct {
	BackendClient   backend.BackendClient
	MaxFetchWorkers int
}

type BrowseService struct {
	backendClient   backend.BackendClient
	maxFetchWorkers int
}

func NewBrowseService(config BrowseServiceConfig) BrowseService {
	if config.MaxFetchWorkers <= 0 {
		config.MaxFetchWorkers = 4
	}

	return BrowseService{
		backendClient:   config.BackendClient,
		maxFetchWorkers: config.MaxFetchWorkers,
	}
}

func (s BrowseService) LoadRow(ctx context.Context, section models.Section, userID string) RowResult {
	result := RowResult{
		Section: section,
	}

	payload, err := s.backendClient.FetchSection(ctx, section, userID)

	if err != nil {
		slog.Error("error loading section", "section", section.ID, "endpoint", section.Endpoint, "error", err)
		result.Err = err
		return result
	}

	result.Payload = payload
	return result
}

/*
LoadRows loads every section concurrently. Results keep the order of
sections and a failure in one section never touches another.
*/
func (s BrowseService) LoadRows(ctx context.Context, sections []models.Section, userID string) []RowResult {
	results := make([]RowResult, len(sections))

	for index, section := range sections {
		results[index] = RowResult{Section: section, Err: ErrNotLoaded}
	}

	pool := pond.NewPool(s.maxFetchWorkers, pond.WithContext(ctx))

	for index, section := range sections {
		pool.Submit(func() {
			results[index] = s.LoadRow(ctx, section, userID)
		})
	}

	_ = pool.Stop().Wait()
	return results
}
