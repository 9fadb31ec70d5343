package ranking

import (
	"math"
	"strings"
	"time"

	"jobrank/internal/domain/skill"
)

// FeatureVector holds the ten normalized sub-scores describing one
// candidate-job pair. Every field stays in [0,1]; missing underlying data
// resolves to a neutral default instead of a mismatch, with the single
// exception of SemanticSimilarity where absence means "not computed".
type FeatureVector struct {
	SemanticSimilarity  float64
	SkillMatch          float64
	ExperienceAlignment float64
	LocationFit         float64
	WorkModeFit         float64
	SalaryFit           float64
	CompanyTrust        float64
	Recency             float64
	Engagement          float64
	Personalization     float64
}

const neutralScore = 0.5

// partialCreditWeight is the credit a candidate's parent skill earns toward a
// job's related child skill.
const partialCreditWeight = 0.5

var majorCities = []string{
	"new york", "san francisco", "los angeles", "chicago", "austin", "seattle",
	"boston", "denver", "atlanta", "toronto", "vancouver", "london", "berlin",
	"amsterdam", "paris", "dublin", "singapore", "sydney", "bangalore", "jakarta",
	"tokyo", "dubai",
}

var trustedCompanies = map[string]bool{
	"google":     true,
	"microsoft":  true,
	"amazon":     true,
	"apple":      true,
	"meta":       true,
	"netflix":    true,
	"stripe":     true,
	"shopify":    true,
	"salesforce": true,
	"nvidia":     true,
	"ibm":        true,
	"oracle":     true,
}

// experienceLevels is the fixed ordinal scale both sides are mapped through.
var experienceLevels = map[string]int{
	"intern":       0,
	"internship":   0,
	"entry":        1,
	"entry level":  1,
	"junior":       1,
	"associate":    1,
	"mid":          2,
	"middle":       2,
	"mid level":    2,
	"intermediate": 2,
	"senior":       3,
	"sr":           3,
	"lead":         4,
	"staff":        4,
	"principal":    4,
	"director":     5,
	"head":         5,
}

// Extractor computes feature vectors. The clock is injectable so recency
// scoring stays deterministic in tests.
type Extractor struct {
	now func() time.Time
}

func NewExtractor() *Extractor {
	return &Extractor{now: time.Now}
}

func NewExtractorWithClock(now func() time.Time) *Extractor {
	if now == nil {
		now = time.Now
	}
	return &Extractor{now: now}
}

// Extract computes all ten sub-scores for a candidate-job pair. semantic is
// the caller-supplied similarity, nil when no embedding was computed.
func (e *Extractor) Extract(job JobPosting, candidate CandidateProfile, semantic *float64) FeatureVector {
	return FeatureVector{
		SemanticSimilarity:  semanticScore(semantic),
		SkillMatch:          skillMatchScore(job.Skills, candidate.Skills),
		ExperienceAlignment: experienceScore(job.ExperienceLevel, candidate.YearsExperience),
		LocationFit:         locationScore(job.Location, candidate.Location),
		WorkModeFit:         workModeScore(job.WorkMode, candidate.WorkMode),
		SalaryFit:           salaryScore(job.Salary, candidate.DesiredSalary),
		CompanyTrust:        trustScore(job),
		Recency:             e.recencyScore(job.PostedAt),
		Engagement:          engagementScore(job.Applications),
		Personalization:     personalizationScore(job, candidate),
	}
}

func semanticScore(semantic *float64) float64 {
	if semantic == nil {
		return 0
	}
	return clamp01(*semantic)
}

// skillMatchScore rewards small-but-complete overlap: a Jaccard-style ratio
// over the normalized union, scaled by two and clamped. Parent skills earn
// partial credit toward a job's related child skills.
func skillMatchScore(jobSkills, candidateSkills []string) float64 {
	js := skill.NormalizeList(jobSkills)
	cs := skill.NormalizeList(candidateSkills)
	if len(js) == 0 || len(cs) == 0 {
		return neutralScore
	}

	union := make(map[string]bool, len(js)+len(cs))
	for _, s := range js {
		union[strings.ToLower(s)] = true
	}
	for _, s := range cs {
		union[strings.ToLower(s)] = true
	}

	credit := 0.0
	for _, c := range cs {
		if matchesAny(c, js) {
			credit++
			continue
		}
		if relatedToAny(c, js) {
			credit += partialCreditWeight
		}
	}

	ratio := credit / float64(len(union))
	return clamp01(ratio * 2)
}

func matchesAny(candidateSkill string, jobSkills []string) bool {
	c := strings.ToLower(candidateSkill)
	for _, j := range jobSkills {
		jl := strings.ToLower(j)
		if strings.Contains(jl, c) || strings.Contains(c, jl) {
			return true
		}
	}
	return false
}

func relatedToAny(candidateSkill string, jobSkills []string) bool {
	for _, child := range skill.RelatedSkills(candidateSkill) {
		if matchesAny(child, jobSkills) {
			return true
		}
	}
	return false
}

func experienceScore(jobLevel string, candidateYears *float64) float64 {
	jl, ok := parseLevel(jobLevel)
	if !ok {
		return neutralScore
	}
	if candidateYears == nil {
		return neutralScore
	}
	cl := levelFromYears(*candidateYears)

	diff := math.Abs(float64(jl - cl))
	return math.Max(0, 1-0.25*diff)
}

func parseLevel(raw string) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0, false
	}
	if lvl, ok := experienceLevels[s]; ok {
		return lvl, true
	}
	// Tags like "senior engineer" still carry a recognizable level word.
	for token, lvl := range experienceLevels {
		if strings.Contains(s, token) {
			return lvl, true
		}
	}
	return 0, false
}

func levelFromYears(years float64) int {
	switch {
	case years < 1:
		return 0
	case years < 2:
		return 1
	case years < 5:
		return 2
	case years < 8:
		return 3
	case years < 12:
		return 4
	default:
		return 5
	}
}

func locationScore(jobLocation, candidateLocation string) float64 {
	jl := strings.ToLower(strings.TrimSpace(jobLocation))
	cl := strings.ToLower(strings.TrimSpace(candidateLocation))
	if jl == "" || cl == "" {
		return neutralScore
	}
	if strings.Contains(jl, "remote") || strings.Contains(cl, "remote") {
		return 1.0
	}

	jobCity := matchCity(jl)
	candidateCity := matchCity(cl)
	if jobCity != "" && jobCity == candidateCity {
		return 1.0
	}
	if jobCity != "" || candidateCity != "" {
		return 0.6
	}
	return 0.3
}

func matchCity(location string) string {
	for _, city := range majorCities {
		if strings.Contains(location, city) {
			return city
		}
	}
	return ""
}

func workModeScore(jobMode, candidateMode string) float64 {
	jm := strings.ToLower(strings.TrimSpace(jobMode))
	cm := strings.ToLower(strings.TrimSpace(candidateMode))
	if jm == "" || cm == "" {
		return 0.7
	}
	if jm == cm {
		return 1.0
	}
	if jm == WorkModeRemote {
		return 0.9
	}
	if jm == WorkModeHybrid || cm == WorkModeHybrid {
		return 0.8
	}
	return 0.4
}

// salaryScore clamps inside the feature itself so a zero candidate midpoint
// can never leak an out-of-range value downstream.
func salaryScore(job, desired *SalaryRange) float64 {
	if job == nil || desired == nil {
		return neutralScore
	}
	jobMid := job.Mid()
	candidateMid := desired.Mid()
	if jobMid <= 0 || candidateMid <= 0 {
		return neutralScore
	}

	if jobMid >= desired.Min && jobMid <= desired.Max {
		return 1.0
	}
	if jobMid > desired.Max {
		return 0.6
	}
	return clamp01(1 - (candidateMid-jobMid)/candidateMid)
}

func trustScore(job JobPosting) float64 {
	if trustedCompanies[strings.ToLower(strings.TrimSpace(job.Company))] {
		return 1.0
	}
	if job.TrustScore != nil {
		return clamp01(*job.TrustScore / 100)
	}
	if job.Source == SourcePlatform {
		return 0.9
	}
	return neutralScore
}

func (e *Extractor) recencyScore(postedAt *time.Time) float64 {
	if postedAt == nil || postedAt.IsZero() {
		return neutralScore
	}
	age := e.now().Sub(*postedAt)
	if age < 0 {
		age = 0
	}
	days := age.Hours() / 24

	switch {
	case days < 1:
		return 1.0
	case days < 3:
		return 0.9
	case days < 7:
		return 0.8
	case days < 14:
		return 0.6
	case days < 30:
		return 0.4
	default:
		return 0.2
	}
}

func engagementScore(applications int) float64 {
	switch {
	case applications < 10:
		return 1.0
	case applications < 50:
		return 0.8
	case applications < 100:
		return 0.6
	case applications < 500:
		return 0.4
	default:
		return 0.2
	}
}

func personalizationScore(job JobPosting, candidate CandidateProfile) float64 {
	score := neutralScore
	if strings.TrimSpace(candidate.Industry) != "" && job.Source == SourcePlatform {
		score += 0.2
	}
	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
