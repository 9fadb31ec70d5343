package ranking

// Learned weights are clamped so no single signal can dominate or vanish.
const (
	MinWeight = 0.05
	MaxWeight = 0.4
)

// Persisted key names for the flat weights document.
const (
	KeySemanticSimilarity  = "semantic_similarity"
	KeySkillMatch          = "skill_match"
	KeyExperienceAlignment = "experience_alignment"
	KeyLocationFit         = "location_fit"
	KeyWorkModeFit         = "work_mode_fit"
	KeySalaryFit           = "salary_fit"
	KeyCompanyTrust        = "company_trust"
	KeyRecency             = "recency"
	KeyEngagement          = "engagement"
	KeyPersonalization     = "personalization"
	KeyBias                = "bias"
)

// ModelWeights mirrors FeatureVector field for field, plus a bias term.
// Weights are not a probability mixture and need not sum to 1.
type ModelWeights struct {
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
	Bias                float64
}

// DefaultWeights are the hand-tuned startup weights, in force until the first
// adaptation pass replaces them.
func DefaultWeights() ModelWeights {
	return ModelWeights{
		SemanticSimilarity:  0.25,
		SkillMatch:          0.20,
		ExperienceAlignment: 0.10,
		LocationFit:         0.08,
		WorkModeFit:         0.07,
		SalaryFit:           0.08,
		CompanyTrust:        0.06,
		Recency:             0.06,
		Engagement:          0.05,
		Personalization:     0.05,
		Bias:                0,
	}
}

func (w ModelWeights) ToMap() map[string]float64 {
	return map[string]float64{
		KeySemanticSimilarity:  w.SemanticSimilarity,
		KeySkillMatch:          w.SkillMatch,
		KeyExperienceAlignment: w.ExperienceAlignment,
		KeyLocationFit:         w.LocationFit,
		KeyWorkModeFit:         w.WorkModeFit,
		KeySalaryFit:           w.SalaryFit,
		KeyCompanyTrust:        w.CompanyTrust,
		KeyRecency:             w.Recency,
		KeyEngagement:          w.Engagement,
		KeyPersonalization:     w.Personalization,
		KeyBias:                w.Bias,
	}
}

// WeightsFromMap rebuilds ModelWeights from a persisted document. A document
// missing any feature key is considered corrupt and rejected, which callers
// treat as "use defaults".
func WeightsFromMap(m map[string]float64) (ModelWeights, bool) {
	keys := []string{
		KeySemanticSimilarity, KeySkillMatch, KeyExperienceAlignment,
		KeyLocationFit, KeyWorkModeFit, KeySalaryFit, KeyCompanyTrust,
		KeyRecency, KeyEngagement, KeyPersonalization,
	}
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return ModelWeights{}, false
		}
	}
	return ModelWeights{
		SemanticSimilarity:  m[KeySemanticSimilarity],
		SkillMatch:          m[KeySkillMatch],
		ExperienceAlignment: m[KeyExperienceAlignment],
		LocationFit:         m[KeyLocationFit],
		WorkModeFit:         m[KeyWorkModeFit],
		SalaryFit:           m[KeySalaryFit],
		CompanyTrust:        m[KeyCompanyTrust],
		Recency:             m[KeyRecency],
		Engagement:          m[KeyEngagement],
		Personalization:     m[KeyPersonalization],
		Bias:                m[KeyBias],
	}, true
}

func clampWeight(v float64) float64 {
	if v < MinWeight {
		return MinWeight
	}
	if v > MaxWeight {
		return MaxWeight
	}
	return v
}
