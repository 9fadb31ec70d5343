package ws

import (
	"encoding/json"
	"time"

	"jobrank/internal/domain/ranking"
)

type WeightsUpdatedEvent struct {
	Type      string             `json:"type"`
	Weights   map[string]float64 `json:"weights"`
	Timestamp string             `json:"timestamp"`
}

// NotifyWeightsUpdated broadcasts the post-adaptation weights to subscribers.
func (h *Hub) NotifyWeightsUpdated(w ranking.ModelWeights) {
	if h == nil {
		return
	}

	evt := WeightsUpdatedEvent{
		Type:      "weights_updated",
		Weights:   w.ToMap(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
