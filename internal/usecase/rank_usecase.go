package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"jobrank/internal/domain/ranking"
	"jobrank/internal/embedding"

	"github.com/google/uuid"
)

var (
	ErrUnauthorized = errors.New("Unauthorized")
	ErrInvalidInput = errors.New("Invalid input")
	ErrNoJobs       = errors.New("No jobs to rank")
	ErrTooManyJobs  = errors.New("Too many jobs in one ranking request")
	ErrInternal     = errors.New("Internal error")
)

type RankParams struct {
	Candidate    ranking.CandidateProfile
	Jobs         []ranking.JobPosting
	Similarities map[uuid.UUID]float64
}

type RankUsecase interface {
	RankJobs(ctx context.Context, params RankParams) ([]ranking.RankedJob, error)
	InvalidateSimilarities(ctx context.Context, candidateID uuid.UUID) error
}

type RankCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateCandidate(ctx context.Context, candidateID string) error
}

type Rank struct {
	ranker     *ranking.Ranker
	similarity *embedding.SimilarityService
	cache      RankCache
	logger     *log.Logger
	maxJobs    int
}

// NewRankUsecase wires the ranker with the optional similarity collaborator
// and cache. Ranking cost is linear in job count and embedding lookups
// dominate it, so maxJobs bounds a single request.
func NewRankUsecase(ranker *ranking.Ranker, similarity *embedding.SimilarityService, cache RankCache, logger *log.Logger, maxJobs int) *Rank {
	if maxJobs <= 0 {
		maxJobs = 200
	}
	return &Rank{
		ranker:     ranker,
		similarity: similarity,
		cache:      cache,
		logger:     logger,
		maxJobs:    maxJobs,
	}
}

func (u *Rank) RankJobs(ctx context.Context, params RankParams) ([]ranking.RankedJob, error) {
	if params.Candidate.ID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if len(params.Jobs) == 0 {
		return nil, ErrNoJobs
	}
	if len(params.Jobs) > u.maxJobs {
		return nil, ErrTooManyJobs
	}

	sims := params.Similarities
	if sims == nil {
		sims = u.similarityMap(ctx, params.Candidate, params.Jobs)
	}

	return u.ranker.Rank(params.Jobs, params.Candidate, sims), nil
}

// InvalidateSimilarities drops every cached similarity map for the candidate.
// Callers use it after a profile edit so the next ranking re-embeds.
func (u *Rank) InvalidateSimilarities(ctx context.Context, candidateID uuid.UUID) error {
	if candidateID == uuid.Nil {
		return ErrUnauthorized
	}
	if u.cache == nil {
		return nil
	}
	return u.cache.InvalidateCandidate(ctx, candidateID.String())
}

// similarityMap serves cached similarities when possible and otherwise asks
// the embedding collaborator. Either can be absent or failing; ranking then
// proceeds without a semantic signal.
func (u *Rank) similarityMap(ctx context.Context, candidate ranking.CandidateProfile, jobs []ranking.JobPosting) map[uuid.UUID]float64 {
	if u.similarity == nil {
		return nil
	}

	key := similarityCacheKey(candidate, jobs)

	if u.cache != nil {
		cached := make(map[uuid.UUID]float64)
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached
		}
	}

	sims := u.similarity.SimilarityMap(ctx, candidate, jobs)
	if sims == nil {
		return nil
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, sims, 0); err != nil && u.logger != nil {
			u.logger.Printf("[Rank] similarity cache write failed | key=%s err=%v", key, err)
		}
	}
	return sims
}
