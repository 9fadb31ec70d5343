package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobrank/internal/domain/ranking"

	"github.com/google/uuid"
)

type mockCache struct {
	getErr      error
	sets        int
	invalidated []string
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if m.getErr != nil {
		return false, m.getErr
	}
	return false, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.sets++
	return nil
}

func (m *mockCache) InvalidateCandidate(_ context.Context, candidateID string) error {
	m.invalidated = append(m.invalidated, candidateID)
	return nil
}

func newTestRankUsecase(maxJobs int) *Rank {
	model := ranking.NewModel(context.Background(), nil, nil)
	ranker := ranking.NewRanker(ranking.NewExtractor(), model)
	return NewRankUsecase(ranker, nil, &mockCache{}, nil, maxJobs)
}

func TestRankJobs_NilCandidate(t *testing.T) {
	uc := newTestRankUsecase(0)
	_, err := uc.RankJobs(context.Background(), RankParams{Jobs: []ranking.JobPosting{{ID: uuid.New()}}})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRankJobs_EmptyJobList(t *testing.T) {
	uc := newTestRankUsecase(0)
	_, err := uc.RankJobs(context.Background(), RankParams{Candidate: ranking.CandidateProfile{ID: uuid.New()}})
	if !errors.Is(err, ErrNoJobs) {
		t.Fatalf("expected ErrNoJobs, got %v", err)
	}
}

func TestRankJobs_TooManyJobs(t *testing.T) {
	uc := newTestRankUsecase(2)
	jobs := []ranking.JobPosting{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}}
	_, err := uc.RankJobs(context.Background(), RankParams{
		Candidate: ranking.CandidateProfile{ID: uuid.New()},
		Jobs:      jobs,
	})
	if !errors.Is(err, ErrTooManyJobs) {
		t.Fatalf("expected ErrTooManyJobs, got %v", err)
	}
}

func TestRankJobs_Success(t *testing.T) {
	uc := newTestRankUsecase(0)

	goJob := uuid.New()
	cobolJob := uuid.New()
	jobs := []ranking.JobPosting{
		{ID: cobolJob, Title: "Mainframe Engineer", Skills: []string{"COBOL-85"}},
		{ID: goJob, Title: "Backend Engineer", Skills: []string{"Go", "PostgreSQL"}},
	}
	candidate := ranking.CandidateProfile{ID: uuid.New(), Skills: []string{"Go", "PostgreSQL"}}

	out, err := uc.RankJobs(context.Background(), RankParams{Candidate: candidate, Jobs: jobs})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 ranked jobs, got %d", len(out))
	}
	if out[0].JobID != goJob {
		t.Fatalf("full skill overlap must rank first")
	}
	if out[0].Explanation == "" {
		t.Fatalf("every ranked job carries an explanation")
	}
}

func TestRankJobs_CallerSimilaritiesWinOverCollaborator(t *testing.T) {
	uc := newTestRankUsecase(0)

	jobID := uuid.New()
	params := RankParams{
		Candidate:    ranking.CandidateProfile{ID: uuid.New()},
		Jobs:         []ranking.JobPosting{{ID: jobID}},
		Similarities: map[uuid.UUID]float64{jobID: 0.85},
	}

	out, err := uc.RankJobs(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out[0].Features.SemanticSimilarity != 0.85 {
		t.Fatalf("caller-supplied similarity must pass through, got %v", out[0].Features.SemanticSimilarity)
	}
}

func TestInvalidateSimilarities(t *testing.T) {
	model := ranking.NewModel(context.Background(), nil, nil)
	ranker := ranking.NewRanker(ranking.NewExtractor(), model)
	cache := &mockCache{}
	uc := NewRankUsecase(ranker, nil, cache, nil, 0)

	if err := uc.InvalidateSimilarities(context.Background(), uuid.Nil); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for nil candidate, got %v", err)
	}

	id := uuid.New()
	if err := uc.InvalidateSimilarities(context.Background(), id); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != id.String() {
		t.Fatalf("expected one invalidation for %s, got %v", id, cache.invalidated)
	}
}

func TestSimilarityCacheKey_OrderIndependent(t *testing.T) {
	candidate := ranking.CandidateProfile{ID: uuid.New()}
	a := ranking.JobPosting{ID: uuid.New()}
	b := ranking.JobPosting{ID: uuid.New()}

	k1 := similarityCacheKey(candidate, []ranking.JobPosting{a, b})
	k2 := similarityCacheKey(candidate, []ranking.JobPosting{b, a})
	if k1 != k2 {
		t.Fatalf("job order must not change the cache key")
	}

	other := similarityCacheKey(ranking.CandidateProfile{ID: uuid.New()}, []ranking.JobPosting{a, b})
	if other == k1 {
		t.Fatalf("different candidates must not share a key")
	}
}
