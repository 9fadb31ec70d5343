package dto

import (
	"time"

	"jobrank/internal/domain/ranking"

	"github.com/google/uuid"
)

type SalaryRangeRequest struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type JobPostingRequest struct {
	JobID           uuid.UUID           `json:"job_id"`
	Title           string              `json:"title"`
	CompanyName     string              `json:"company_name"`
	Description     string              `json:"description"`
	Skills          []string            `json:"skills"`
	Requirements    []string            `json:"requirements"`
	ExperienceLevel string              `json:"experience_level"`
	WorkMode        string              `json:"work_mode"`
	Location        string              `json:"location"`
	Salary          *SalaryRangeRequest `json:"salary"`
	Source          string              `json:"source"`
	PostedAt        *time.Time          `json:"posted_at"`
	Applications    int                 `json:"applications"`
	TrustScore      *float64            `json:"trust_score"`
}

type CandidateProfileRequest struct {
	Skills          []string            `json:"skills"`
	Experience      string              `json:"experience"`
	YearsExperience *float64            `json:"years_experience"`
	WorkMode        string              `json:"work_mode"`
	Location        string              `json:"location"`
	DesiredSalary   *SalaryRangeRequest `json:"desired_salary"`
	Industry        string              `json:"industry"`
}

type RankRequest struct {
	// CandidateID is honored only when the auth middleware is disabled;
	// otherwise the token identity wins.
	CandidateID  uuid.UUID               `json:"candidate_id"`
	Candidate    CandidateProfileRequest `json:"candidate"`
	Jobs         []JobPostingRequest     `json:"jobs"`
	Similarities map[uuid.UUID]float64   `json:"similarities"`
}

func (r SalaryRangeRequest) ToDomain() *ranking.SalaryRange {
	return &ranking.SalaryRange{Min: r.Min, Max: r.Max}
}

func (r JobPostingRequest) ToDomain() ranking.JobPosting {
	job := ranking.JobPosting{
		ID:              r.JobID,
		Title:           r.Title,
		Company:         r.CompanyName,
		Description:     r.Description,
		Skills:          r.Skills,
		Requirements:    r.Requirements,
		ExperienceLevel: r.ExperienceLevel,
		WorkMode:        r.WorkMode,
		Location:        r.Location,
		Source:          r.Source,
		PostedAt:        r.PostedAt,
		Applications:    r.Applications,
		TrustScore:      r.TrustScore,
	}
	if r.Salary != nil {
		job.Salary = r.Salary.ToDomain()
	}
	return job
}

func (r CandidateProfileRequest) ToDomain(candidateID uuid.UUID) ranking.CandidateProfile {
	c := ranking.CandidateProfile{
		ID:              candidateID,
		Skills:          r.Skills,
		Experience:      r.Experience,
		YearsExperience: r.YearsExperience,
		WorkMode:        r.WorkMode,
		Location:        r.Location,
		Industry:        r.Industry,
	}
	if r.DesiredSalary != nil {
		c.DesiredSalary = r.DesiredSalary.ToDomain()
	}
	return c
}
