package dto

import (
	"jobrank/internal/domain/ranking"

	"github.com/google/uuid"
)

type FeatureVectorResponse struct {
	SemanticSimilarity  float64 `json:"semantic_similarity"`
	SkillMatch          float64 `json:"skill_match"`
	ExperienceAlignment float64 `json:"experience_alignment"`
	LocationFit         float64 `json:"location_fit"`
	WorkModeFit         float64 `json:"work_mode_fit"`
	SalaryFit           float64 `json:"salary_fit"`
	CompanyTrust        float64 `json:"company_trust"`
	Recency             float64 `json:"recency"`
	Engagement          float64 `json:"engagement"`
	Personalization     float64 `json:"personalization"`
}

type RankedJobResponse struct {
	JobID       uuid.UUID             `json:"job_id"`
	FinalScore  float64               `json:"final_score"`
	Features    FeatureVectorResponse `json:"features"`
	Explanation string                `json:"explanation"`
}

func NewFeatureVectorResponse(f ranking.FeatureVector) FeatureVectorResponse {
	return FeatureVectorResponse{
		SemanticSimilarity:  f.SemanticSimilarity,
		SkillMatch:          f.SkillMatch,
		ExperienceAlignment: f.ExperienceAlignment,
		LocationFit:         f.LocationFit,
		WorkModeFit:         f.WorkModeFit,
		SalaryFit:           f.SalaryFit,
		CompanyTrust:        f.CompanyTrust,
		Recency:             f.Recency,
		Engagement:          f.Engagement,
		Personalization:     f.Personalization,
	}
}

func (f FeatureVectorResponse) ToDomain() ranking.FeatureVector {
	return ranking.FeatureVector{
		SemanticSimilarity:  f.SemanticSimilarity,
		SkillMatch:          f.SkillMatch,
		ExperienceAlignment: f.ExperienceAlignment,
		LocationFit:         f.LocationFit,
		WorkModeFit:         f.WorkModeFit,
		SalaryFit:           f.SalaryFit,
		CompanyTrust:        f.CompanyTrust,
		Recency:             f.Recency,
		Engagement:          f.Engagement,
		Personalization:     f.Personalization,
	}
}

func NewRankedJobResponse(r ranking.RankedJob) RankedJobResponse {
	return RankedJobResponse{
		JobID:       r.JobID,
		FinalScore:  r.FinalScore,
		Features:    NewFeatureVectorResponse(r.Features),
		Explanation: r.Explanation,
	}
}
