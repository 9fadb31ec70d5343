package ranking

import (
	"context"
	"log"
	"sync"
)

const (
	// defaultAdaptBatchSize is the buffered-sample count that triggers one
	// adaptation pass.
	defaultAdaptBatchSize = 100
	// minAdaptSamples is the floor below which adaptation is always a no-op;
	// the model never mutates itself from a near-empty buffer.
	minAdaptSamples = 10
)

// WeightsStore is the persistence port for model weights. Load reports
// ok=false when no usable persisted copy exists.
type WeightsStore interface {
	Load(ctx context.Context) (ModelWeights, bool, error)
	Save(ctx context.Context, w ModelWeights) error
}

// TrainingSample is one observed interaction: the feature vector at decision
// time and the relevance label derived from the interaction type.
type TrainingSample struct {
	PairID   string
	Features FeatureVector
	Label    float64
}

type ModelStats struct {
	BufferedSamples int
	IsAdapted       bool
	Weights         ModelWeights
}

// Model is the linear scorer with online weight adaptation. All mutable state
// (weights, sample buffer) is guarded by one mutex; an adaptation pass reads
// and clears the buffer atomically relative to other writers.
type Model struct {
	mu      sync.Mutex
	weights ModelWeights
	samples []TrainingSample
	adapted bool

	store     WeightsStore
	logger    *log.Logger
	batchSize int
	onUpdate  func(ModelWeights)
}

type ModelOption func(*Model)

func WithBatchSize(n int) ModelOption {
	return func(m *Model) {
		if n >= minAdaptSamples {
			m.batchSize = n
		}
	}
}

// WithUpdateHook registers a callback invoked after every adaptation pass
// with the new weights. Called outside the model lock.
func WithUpdateHook(fn func(ModelWeights)) ModelOption {
	return func(m *Model) { m.onUpdate = fn }
}

// NewModel builds a model with hand-tuned defaults, then overwrites them with
// a previously persisted copy when the store has one. A missing or corrupt
// persisted document is not an error.
func NewModel(ctx context.Context, store WeightsStore, logger *log.Logger, opts ...ModelOption) *Model {
	m := &Model{
		weights:   DefaultWeights(),
		store:     store,
		logger:    logger,
		batchSize: defaultAdaptBatchSize,
	}
	for _, opt := range opts {
		opt(m)
	}

	if store != nil {
		w, ok, err := store.Load(ctx)
		if err != nil {
			if logger != nil {
				logger.Printf("[Model] weights load failed, using defaults: %v", err)
			}
		} else if ok {
			m.weights = w
			m.adapted = true
		}
	}
	return m
}

// Score computes bias + sum(weight*feature), clamped to [0,1]. Pure linear,
// no interaction terms.
func (m *Model) Score(f FeatureVector) float64 {
	m.mu.Lock()
	w := m.weights
	m.mu.Unlock()
	return scoreWith(w, f)
}

func scoreWith(w ModelWeights, f FeatureVector) float64 {
	s := w.Bias +
		w.SemanticSimilarity*f.SemanticSimilarity +
		w.SkillMatch*f.SkillMatch +
		w.ExperienceAlignment*f.ExperienceAlignment +
		w.LocationFit*f.LocationFit +
		w.WorkModeFit*f.WorkModeFit +
		w.SalaryFit*f.SalaryFit +
		w.CompanyTrust*f.CompanyTrust +
		w.Recency*f.Recency +
		w.Engagement*f.Engagement +
		w.Personalization*f.Personalization
	return clamp01(s)
}

// RecordInteraction buffers one training sample and, once the batch threshold
// is reached, runs a single adaptation pass and persists the result. The
// interaction-to-label mapping belongs to the caller; the model is agnostic
// to interaction semantics.
func (m *Model) RecordInteraction(ctx context.Context, pairID string, features FeatureVector, label float64) {
	label = clamp01(label)

	m.mu.Lock()
	m.samples = append(m.samples, TrainingSample{PairID: pairID, Features: features, Label: label})
	if len(m.samples) < m.batchSize {
		m.mu.Unlock()
		return
	}

	updated, ok := m.adaptLocked()
	m.mu.Unlock()

	if !ok {
		return
	}
	m.persist(ctx, updated)
	if m.onUpdate != nil {
		m.onUpdate(updated)
	}
}

// adaptLocked consumes the buffer and replaces the live weights. Caller holds
// m.mu. The update is a correlation-style heuristic: each candidate weight is
// the relevance-weighted average of that feature scaled by the new bias (the
// mean label). It nudges weights toward features that co-occur with
// high-relevance interactions; it is not gradient descent and does not
// minimize a loss.
func (m *Model) adaptLocked() (ModelWeights, bool) {
	n := len(m.samples)
	if n < minAdaptSamples {
		return ModelWeights{}, false
	}

	var labelSum float64
	var sums FeatureVector
	for _, s := range m.samples {
		labelSum += s.Label
		sums.SemanticSimilarity += s.Features.SemanticSimilarity * s.Label
		sums.SkillMatch += s.Features.SkillMatch * s.Label
		sums.ExperienceAlignment += s.Features.ExperienceAlignment * s.Label
		sums.LocationFit += s.Features.LocationFit * s.Label
		sums.WorkModeFit += s.Features.WorkModeFit * s.Label
		sums.SalaryFit += s.Features.SalaryFit * s.Label
		sums.CompanyTrust += s.Features.CompanyTrust * s.Label
		sums.Recency += s.Features.Recency * s.Label
		sums.Engagement += s.Features.Engagement * s.Label
		sums.Personalization += s.Features.Personalization * s.Label
	}

	// An all-zero-label batch carries no relevance signal; discard it rather
	// than divide by zero.
	if labelSum <= 0 {
		m.samples = nil
		if m.logger != nil {
			m.logger.Printf("[Model] adaptation skipped | reason=zero_label_sum samples=%d", n)
		}
		return ModelWeights{}, false
	}

	bias := labelSum / float64(n)
	m.weights = ModelWeights{
		SemanticSimilarity:  clampWeight(sums.SemanticSimilarity / labelSum * bias),
		SkillMatch:          clampWeight(sums.SkillMatch / labelSum * bias),
		ExperienceAlignment: clampWeight(sums.ExperienceAlignment / labelSum * bias),
		LocationFit:         clampWeight(sums.LocationFit / labelSum * bias),
		WorkModeFit:         clampWeight(sums.WorkModeFit / labelSum * bias),
		SalaryFit:           clampWeight(sums.SalaryFit / labelSum * bias),
		CompanyTrust:        clampWeight(sums.CompanyTrust / labelSum * bias),
		Recency:             clampWeight(sums.Recency / labelSum * bias),
		Engagement:          clampWeight(sums.Engagement / labelSum * bias),
		Personalization:     clampWeight(sums.Personalization / labelSum * bias),
		Bias:                bias,
	}
	m.adapted = true
	m.samples = nil

	if m.logger != nil {
		m.logger.Printf("[Model] weights adapted | samples=%d bias=%.4f", n, bias)
	}
	return m.weights, true
}

// persist is best-effort: a failed write means the new weights live only in
// memory until the next successful save.
func (m *Model) persist(ctx context.Context, w ModelWeights) {
	if m.store == nil {
		return
	}
	if err := m.store.Save(ctx, w); err != nil {
		if m.logger != nil {
			m.logger.Printf("[Model] weights save failed, serving from memory: %v", err)
		}
	}
}

func (m *Model) Weights() ModelWeights {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.weights
}

func (m *Model) Stats() ModelStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return ModelStats{
		BufferedSamples: len(m.samples),
		IsAdapted:       m.adapted,
		Weights:         m.weights,
	}
}
