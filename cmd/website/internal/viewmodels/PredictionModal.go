package viewmodels

import (
	"strconv"

	"github.com/kinetsulist/kinetsulist/pkg/models"
)

type PredictionModal struct {
	Prediction models.Prediction
	ArcDegrees string
}

func NewPredictionModal(prediction models.Prediction, fallbackTitle string) PredictionModal {
	if prediction.Title == "" {
		prediction.Title = fallbackTitle
	}

	return PredictionModal{
		Prediction: prediction,
		ArcDegrees: strconv.FormatFloat(prediction.Degrees(), 'f', -1, 64) + "deg",
	}
}
