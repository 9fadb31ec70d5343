package dto

import "jobrank/internal/domain/ranking"

type ModelWeightsResponse struct {
	Weights map[string]float64 `json:"weights"`
}

type ModelStatsResponse struct {
	BufferedSamples int                `json:"buffered_samples"`
	IsAdapted       bool               `json:"is_adapted"`
	Weights         map[string]float64 `json:"weights"`
}

func NewModelWeightsResponse(w ranking.ModelWeights) ModelWeightsResponse {
	return ModelWeightsResponse{Weights: w.ToMap()}
}

func NewModelStatsResponse(s ranking.ModelStats) ModelStatsResponse {
	return ModelStatsResponse{
		BufferedSamples: s.BufferedSamples,
		IsAdapted:       s.IsAdapted,
		Weights:         s.Weights.ToMap(),
	}
}
