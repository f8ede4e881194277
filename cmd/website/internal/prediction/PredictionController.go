package prediction

import (
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/kinetsulist/kinetsulist/cmd/website/internal/fragments"
	"github.com/kinetsulist/kinetsulist/cmd/website/internal/viewmodels"
	"github.com/kinetsulist/kinetsulist/pkg/backend"
)

type PredictionHandlers interface {
	Predict(w http.ResponseWriter, r *http.Request)
}

type PredictionControllerConfig struct {
	BackendClient backend.BackendClient
	Fragments     fragments.FragmentRenderer
}

type PredictionController struct {
	backendClient backend.BackendClient
	fragments     fragments.FragmentRenderer
}

func NewPredictionController(config PredictionControllerConfig) PredictionController {
	return PredictionController{
		backendClient: config.BackendClient,
		fragments:     config.Fragments,
	}
}

/*
GET /predecir/{id}

Answers with the modal markup, which htmx appends to the page body. A
failure answers 502 so htmx leaves the page alone and the button shows
its error label.
*/
func (c PredictionController) Predict(w http.ResponseWriter, r *http.Request) {
	animeID := r.PathValue("id")
	title := httphelpers.GetFromRequest[string](r, "titulo")
	userID := viewmodels.GetUserID(r)

	if animeID == "" {
		httphelpers.WriteText(w, http.StatusBadRequest, "anime ID is required")
		return
	}

	slog.Debug("predicting anime", "animeID", animeID, "userID", userID)

	prediction, err := c.backendClient.Predict(r.Context(), animeID, userID)

	if err != nil {
		slog.Error("error predicting anime", "animeID", animeID, "userID", userID, "error", err)
		httphelpers.WriteText(w, http.StatusBadGateway, "Error en predicción")
		return
	}

	c.fragments.Write(w, http.StatusOK, "prediction-modal", viewmodels.NewPredictionModal(prediction, title))
}
