package embedding

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"

	"jobrank/internal/domain/ranking"

	"github.com/google/uuid"
)

// Provider is the external embedding collaborator: text in, fixed-length
// vector out. Nothing more is assumed about it.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// Cosine returns the cosine similarity of two vectors mapped into [0,1].
// Mismatched dimensions yield 0 alongside ErrDimensionMismatch so callers can
// surface a warning without failing the ranking path.
func Cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	if len(a) == 0 {
		return 0, nil
	}

	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0, nil
	}

	sim := dot / (math.Sqrt(na) * math.Sqrt(nb))
	if sim < 0 {
		return 0, nil
	}
	if sim > 1 {
		return 1, nil
	}
	return sim, nil
}

// SimilarityService precomputes a per-job similarity map for one candidate.
// Any provider failure degrades to "no semantic signal" for the affected
// jobs; the ranking path never sees an error from here.
type SimilarityService struct {
	provider Provider
	logger   *log.Logger
}

func NewSimilarityService(provider Provider, logger *log.Logger) *SimilarityService {
	return &SimilarityService{provider: provider, logger: logger}
}

func (s *SimilarityService) SimilarityMap(ctx context.Context, candidate ranking.CandidateProfile, jobs []ranking.JobPosting) map[uuid.UUID]float64 {
	if s == nil || s.provider == nil {
		return nil
	}

	text := candidateText(candidate)
	if text == "" {
		return nil
	}

	cv, err := s.provider.Embed(ctx, text)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("[Similarity] candidate embed failed, skipping semantic signal: %v", err)
		}
		return nil
	}

	out := make(map[uuid.UUID]float64, len(jobs))
	for _, job := range jobs {
		jv, err := s.provider.Embed(ctx, jobText(job))
		if err != nil {
			if s.logger != nil {
				s.logger.Printf("[Similarity] job embed failed | job_id=%s err=%v", job.ID, err)
			}
			continue
		}

		sim, err := Cosine(cv, jv)
		if err != nil {
			if s.logger != nil {
				s.logger.Printf("[Similarity] dimension mismatch, treating as 0 | job_id=%s candidate_dim=%d job_dim=%d", job.ID, len(cv), len(jv))
			}
		}
		out[job.ID] = sim
	}
	return out
}

func candidateText(c ranking.CandidateProfile) string {
	parts := make([]string, 0, 2)
	if s := strings.TrimSpace(strings.Join(c.Skills, ", ")); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(c.Experience); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, ". ")
}

func jobText(j ranking.JobPosting) string {
	parts := make([]string, 0, 3)
	if s := strings.TrimSpace(j.Title); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(strings.Join(j.Skills, ", ")); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(j.Description); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, ". ")
}
