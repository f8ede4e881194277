package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/kinetsulist/kinetsulist/pkg/catalog"
	"github.com/kinetsulist/kinetsulist/pkg/models"
)

/*
ErrFetch is returned for every failed backend call: transport errors,
non-success statuses and bodies that cannot be decoded are not told apart.
*/
var ErrFetch = errors.New("fetch error")

type BackendClient interface {
	FetchSection(ctx context.Context, section models.Section, userID string) (SectionPayload, error)
	Predict(ctx context.Context, animeID, userID string) (models.Prediction, error)
}

/*
SectionPayload is the normalized content of one section response. Only
one of the two lists is populated, depending on the section's render mode.
*/
type SectionPayload struct {
	Animes []models.Anime
	Genres []string
}

func (p SectionPayload) IsEmpty() bool {
	return len(p.Animes) == 0 && len(p.Genres) == 0
}

type ClientConfig struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(config ClientConfig) Client {
	httpClient := config.HTTPClient

	if httpClient == nil {
		timeout := config.Timeout

		if timeout <= 0 {
			timeout = 15 * time.Second
		}

		httpClient = &http.Client{
			Timeout: timeout,
		}
	}

	return Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: httpClient,
	}
}

func (c Client) FetchSection(ctx context.Context, section models.Section, userID string) (SectionPayload, error) {
	var (
		err      error
		envelope map[string]json.RawMessage
	)

	result := SectionPayload{}
	endpoint := catalog.EndpointFor(section, userID)

	if err = c.getJSON(ctx, endpoint, &envelope); err != nil {
		return result, err
	}

	raw, ok := envelope[section.Field]

	if !ok || isNull(raw) {
		slog.Debug("section response is missing its field", "section", section.ID, "field", section.Field)
		return result, nil
	}

	if section.IsGenreList() {
		if result.Genres, err = decodeGenres(raw); err != nil {
			return result, fmt.Errorf("%w: decoding field '%s' from %s: %v", ErrFetch, section.Field, endpoint, err)
		}

		return result, nil
	}

	records := []map[string]any{}

	if err = json.Unmarshal(raw, &records); err != nil {
		return result, fmt.Errorf("%w: decoding field '%s' from %s: %v", ErrFetch, section.Field, endpoint, err)
	}

	result.Animes = models.NormalizeAnimes(records)
	return result, nil
}

func (c Client) Predict(ctx context.Context, animeID, userID string) (models.Prediction, error) {
	var (
		err error
		raw map[string]any
	)

	endpoint := catalog.PredictionEndpointFor(animeID, userID)

	if err = c.getJSON(ctx, endpoint, &raw); err != nil {
		return models.Prediction{}, err
	}

	result := normalizePrediction(raw)
	result.AnimeID = animeID

	return result, nil
}

func (c Client) getJSON(ctx context.Context, endpoint string, dest any) error {
	var (
		err      error
		request  *http.Request
		response *http.Response
	)

	u := c.baseURL + endpoint

	if request, err = http.NewRequestWithContext(ctx, http.MethodGet, u, nil); err != nil {
		return fmt.Errorf("%w: building request for %s: %v", ErrFetch, u, err)
	}

	request.Header.Set("Accept", "application/json")

	if response, err = c.httpClient.Do(request); err != nil {
		return fmt.Errorf("%w: requesting %s: %v", ErrFetch, u, err)
	}

	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, response.Body)
		return fmt.Errorf("%w: requesting %s, status: %s", ErrFetch, u, response.Status)
	}

	if err = json.NewDecoder(response.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: decoding response from %s: %v", ErrFetch, u, err)
	}

	return nil
}

func decodeGenres(raw json.RawMessage) ([]string, error) {
	var (
		err   error
		items []any
	)

	if err = json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}

	result := []string{}

	for _, item := range items {
		switch v := item.(type) {
		case map[string]any:
			if name := models.FormatValue(v["nombre"]); name != "" {
				result = append(result, name)
			} else if name := models.FormatValue(v["name"]); name != "" {
				result = append(result, name)
			}

		default:
			if name := models.FormatValue(v); name != "" {
				result = append(result, name)
			}
		}
	}

	return result, nil
}

func normalizePrediction(raw map[string]any) models.Prediction {
	result := models.Prediction{
		Title:      models.FormatValue(raw["titulo"]),
		Percentage: models.FormatValue(raw["porcentaje"]),
		Predicted:  models.FormatValue(raw["prediccion"]),
		Message:    models.FormatValue(raw["mensaje"]),
	}

	if _, isNumber := raw["porcentaje"].(float64); isNumber && result.Percentage != "" {
		result.Percentage += "%"
	}

	switch p := raw["probabilidad"].(type) {
	case float64:
		result.Probability = p

	case string:
		_, _ = fmt.Sscanf(p, "%g", &result.Probability)
	}

	return result
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}
