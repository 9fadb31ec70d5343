package ranking

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Ranker orchestrates feature extraction and scoring across a job list.
// All inputs must be resolved by the caller: the optional similarity map is
// the only external signal, and nothing is fetched lazily here.
type Ranker struct {
	extractor *Extractor
	model     *Model
}

func NewRanker(extractor *Extractor, model *Model) *Ranker {
	if extractor == nil {
		extractor = NewExtractor()
	}
	return &Ranker{extractor: extractor, model: model}
}

// Rank scores every job against the candidate and returns the list sorted
// descending by score. The sort is stable, so ties keep input order.
func (r *Ranker) Rank(jobs []JobPosting, candidate CandidateProfile, similarities map[uuid.UUID]float64) []RankedJob {
	out := make([]RankedJob, 0, len(jobs))
	for _, job := range jobs {
		var semantic *float64
		if similarities != nil {
			if sim, ok := similarities[job.ID]; ok {
				semantic = &sim
			}
		}

		features := r.extractor.Extract(job, candidate, semantic)
		out = append(out, RankedJob{
			JobID:       job.ID,
			FinalScore:  r.model.Score(features),
			Features:    features,
			Explanation: explain(features),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FinalScore > out[j].FinalScore
	})
	return out
}

// explain builds a short rationale from feature thresholds: up to two
// positive phrases and one caveat.
func explain(f FeatureVector) string {
	type phrase struct {
		ok   bool
		text string
	}

	positives := []phrase{
		{f.SemanticSimilarity > 0.7, "strong semantic match"},
		{f.SkillMatch > 0.7, "excellent skill overlap"},
		{f.LocationFit >= 1.0, "location aligned"},
		{f.SalaryFit >= 1.0, "salary within target range"},
		{f.Recency > 0.8, "freshly posted"},
		{f.CompanyTrust >= 1.0, "well-known employer"},
		{f.Engagement >= 1.0, "low competition so far"},
	}
	caveats := []phrase{
		{f.SkillMatch < 0.3, "skill gap"},
		{f.ExperienceAlignment < 0.5, "experience level mismatch"},
		{f.SalaryFit < 0.4, "salary below your target"},
		{f.Recency <= 0.2, "older posting"},
	}

	parts := make([]string, 0, 3)
	for _, p := range positives {
		if len(parts) == 2 {
			break
		}
		if p.ok {
			parts = append(parts, p.text)
		}
	}
	for _, p := range caveats {
		if p.ok {
			parts = append(parts, p.text)
			break
		}
	}

	if len(parts) == 0 {
		return "balanced fit across signals"
	}
	return strings.Join(parts, "; ")
}
