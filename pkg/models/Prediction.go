package models

import "fmt"

const PredictedYes = "Sí"

type Prediction struct {
	AnimeID     string
	Title       string
	Probability float64
	Percentage  string
	Predicted   string
	Message     string
}

func (p Prediction) IsYes() bool {
	return p.Predicted == PredictedYes
}

/*
Degrees maps the probability onto the arc drawn by the probability
circle. Out of range probabilities are clamped to [0, 1].
*/
func (p Prediction) Degrees() float64 {
	prob := p.Probability

	if prob < 0 {
		prob = 0
	}

	if prob > 1 {
		prob = 1
	}

	return prob * 360
}

/*
PercentageText is the backend's formatted percentage, or one derived
from the probability when the backend did not send it.
*/
func (p Prediction) PercentageText() string {
	if p.Percentage != "" {
		return p.Percentage
	}

	return fmt.Sprintf("%.1f%%", p.Probability*100)
}
