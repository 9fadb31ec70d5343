package embedding

import (
	"context"
	"errors"
	"math"
	"testing"

	"jobrank/internal/domain/ranking"

	"github.com/google/uuid"
)

func TestCosine(t *testing.T) {
	got, err := Cosine([]float64{1, 0}, []float64{1, 0})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if math.Abs(got-1) > 1e-9 {
		t.Fatalf("identical vectors must score 1, got %v", got)
	}

	got, err = Cosine([]float64{1, 0}, []float64{0, 1})
	if err != nil || got != 0 {
		t.Fatalf("orthogonal vectors must score 0, got %v err %v", got, err)
	}

	// Opposed vectors clamp to 0 rather than going negative.
	got, err = Cosine([]float64{1, 0}, []float64{-1, 0})
	if err != nil || got != 0 {
		t.Fatalf("opposed vectors must clamp to 0, got %v err %v", got, err)
	}
}

func TestCosine_DimensionMismatch(t *testing.T) {
	got, err := Cosine([]float64{1, 0}, []float64{1, 0, 0})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
	if got != 0 {
		t.Fatalf("mismatched dimensions must contribute 0, got %v", got)
	}
}

func TestCosine_ZeroVector(t *testing.T) {
	got, err := Cosine([]float64{0, 0}, []float64{1, 0})
	if err != nil || got != 0 {
		t.Fatalf("zero vector must score 0 without error, got %v err %v", got, err)
	}
}

type fakeProvider struct {
	vectors map[string][]float64
	err     error
}

func (p fakeProvider) Embed(_ context.Context, text string) ([]float64, error) {
	if p.err != nil {
		return nil, p.err
	}
	if v, ok := p.vectors[text]; ok {
		return v, nil
	}
	return []float64{1, 0, 0}, nil
}

func TestSimilarityMap(t *testing.T) {
	jobID := uuid.New()
	svc := NewSimilarityService(fakeProvider{}, nil)

	candidate := ranking.CandidateProfile{ID: uuid.New(), Skills: []string{"Go"}}
	jobs := []ranking.JobPosting{{ID: jobID, Title: "Backend Engineer"}}

	sims := svc.SimilarityMap(context.Background(), candidate, jobs)
	if len(sims) != 1 {
		t.Fatalf("expected one entry, got %d", len(sims))
	}
	if math.Abs(sims[jobID]-1) > 1e-9 {
		t.Fatalf("identical fake vectors must score 1, got %v", sims[jobID])
	}
}

func TestSimilarityMap_ProviderFailure(t *testing.T) {
	svc := NewSimilarityService(fakeProvider{err: errors.New("down")}, nil)

	candidate := ranking.CandidateProfile{ID: uuid.New(), Skills: []string{"Go"}}
	jobs := []ranking.JobPosting{{ID: uuid.New(), Title: "Backend Engineer"}}

	if sims := svc.SimilarityMap(context.Background(), candidate, jobs); sims != nil {
		t.Fatalf("provider failure must yield no semantic signal, got %v", sims)
	}
}

func TestSimilarityMap_NilProvider(t *testing.T) {
	svc := NewSimilarityService(nil, nil)
	if sims := svc.SimilarityMap(context.Background(), ranking.CandidateProfile{}, nil); sims != nil {
		t.Fatalf("nil provider must yield nil map")
	}
}

func TestSimilarityMap_EmptyCandidateText(t *testing.T) {
	svc := NewSimilarityService(fakeProvider{}, nil)
	if sims := svc.SimilarityMap(context.Background(), ranking.CandidateProfile{ID: uuid.New()}, nil); sims != nil {
		t.Fatalf("candidate with no text must yield nil map")
	}
}
