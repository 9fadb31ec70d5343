package ranking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestRanker(now time.Time) *Ranker {
	model := NewModel(context.Background(), nil, nil)
	return NewRanker(NewExtractorWithClock(func() time.Time { return now }), model)
}

func TestRank_Deterministic(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	r := newTestRanker(now)

	posted := now.Add(-48 * time.Hour)
	jobs := []JobPosting{
		{ID: uuid.New(), Title: "Backend Engineer", Skills: []string{"Go"}, PostedAt: &posted},
		{ID: uuid.New(), Title: "Frontend Engineer", Skills: []string{"React"}, Applications: 200},
	}
	candidate := CandidateProfile{ID: uuid.New(), Skills: []string{"Go", "PostgreSQL"}}
	sims := map[uuid.UUID]float64{jobs[0].ID: 0.8, jobs[1].ID: 0.2}

	first := r.Rank(jobs, candidate, sims)
	second := r.Rank(jobs, candidate, sims)

	if len(first) != len(second) {
		t.Fatalf("result length changed between calls")
	}
	for i := range first {
		if first[i].JobID != second[i].JobID || first[i].FinalScore != second[i].FinalScore {
			t.Fatalf("rank not deterministic at position %d", i)
		}
	}
}

func TestRank_StableTieBreak(t *testing.T) {
	r := newTestRanker(time.Now())

	a := uuid.New()
	b := uuid.New()
	jobs := []JobPosting{
		{ID: a, Title: "Engineer", Skills: []string{"Go"}},
		{ID: b, Title: "Engineer", Skills: []string{"Go"}},
	}
	candidate := CandidateProfile{ID: uuid.New(), Skills: []string{"Go"}}

	out := r.Rank(jobs, candidate, nil)
	if out[0].JobID != a || out[1].JobID != b {
		t.Fatalf("equal scores must keep input order")
	}
}

func TestRank_FresherPostingScoresHigher(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	r := newTestRanker(now)

	today := now.Add(-2 * time.Hour)
	stale := now.Add(-40 * 24 * time.Hour)
	fresh := uuid.New()
	old := uuid.New()
	jobs := []JobPosting{
		{ID: old, Title: "Engineer", PostedAt: &stale},
		{ID: fresh, Title: "Engineer", PostedAt: &today},
	}
	candidate := CandidateProfile{ID: uuid.New()}

	out := r.Rank(jobs, candidate, nil)
	if out[0].JobID != fresh {
		t.Fatalf("fresh posting must rank first")
	}
	if out[0].FinalScore <= out[1].FinalScore {
		t.Fatalf("fresh posting must score strictly higher: %v <= %v", out[0].FinalScore, out[1].FinalScore)
	}
	if out[1].Features.Recency != 0.2 {
		t.Fatalf("40-day-old posting must have recency 0.2, got %v", out[1].Features.Recency)
	}
}

func TestRank_SimilarityMapFeedsSemanticFeature(t *testing.T) {
	r := newTestRanker(time.Now())

	withSim := uuid.New()
	withoutSim := uuid.New()
	jobs := []JobPosting{
		{ID: withSim, Title: "Engineer"},
		{ID: withoutSim, Title: "Engineer"},
	}
	candidate := CandidateProfile{ID: uuid.New()}

	out := r.Rank(jobs, candidate, map[uuid.UUID]float64{withSim: 0.9})

	byID := make(map[uuid.UUID]RankedJob, len(out))
	for _, rj := range out {
		byID[rj.JobID] = rj
	}
	if byID[withSim].Features.SemanticSimilarity != 0.9 {
		t.Fatalf("similarity map value must pass through")
	}
	if byID[withoutSim].Features.SemanticSimilarity != 0 {
		t.Fatalf("missing similarity means not computed, feature must be 0")
	}
}

func TestRank_ScoresStayInRange(t *testing.T) {
	r := newTestRanker(time.Now())

	jobs := []JobPosting{{ID: uuid.New()}, {ID: uuid.New(), Applications: 10000}}
	out := r.Rank(jobs, CandidateProfile{ID: uuid.New()}, nil)
	for _, rj := range out {
		if rj.FinalScore < 0 || rj.FinalScore > 1 {
			t.Fatalf("final score out of range: %v", rj.FinalScore)
		}
	}
}

func TestExplain(t *testing.T) {
	strong := FeatureVector{SemanticSimilarity: 0.9, SkillMatch: 0.8, LocationFit: 1.0}
	got := explain(strong)
	if got != "strong semantic match; excellent skill overlap" {
		t.Fatalf("expected two positives, got %q", got)
	}

	gap := FeatureVector{SemanticSimilarity: 0.9, SkillMatch: 0.1, ExperienceAlignment: 0.5, SalaryFit: 0.5, Recency: 0.5}
	got = explain(gap)
	if got != "strong semantic match; skill gap" {
		t.Fatalf("expected positive plus caveat, got %q", got)
	}

	neutral := FeatureVector{
		SemanticSimilarity: 0.5, SkillMatch: 0.5, ExperienceAlignment: 0.5,
		LocationFit: 0.5, WorkModeFit: 0.7, SalaryFit: 0.5, CompanyTrust: 0.5,
		Recency: 0.5, Engagement: 0.8, Personalization: 0.5,
	}
	if got := explain(neutral); got != "balanced fit across signals" {
		t.Fatalf("expected fallback phrase, got %q", got)
	}
}
