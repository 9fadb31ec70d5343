package ranking

import (
	"time"

	"github.com/google/uuid"
)

const (
	WorkModeRemote = "remote"
	WorkModeHybrid = "hybrid"
	WorkModeOnsite = "onsite"
)

const (
	SourcePlatform = "platform"
	SourceExternal = "external"
)

type SalaryRange struct {
	Min float64
	Max float64
}

func (r SalaryRange) Mid() float64 {
	return (r.Min + r.Max) / 2
}

type JobPosting struct {
	ID              uuid.UUID
	Title           string
	Company         string
	Description     string
	Skills          []string
	Requirements    []string
	ExperienceLevel string
	WorkMode        string
	Location        string
	Salary          *SalaryRange
	Source          string
	PostedAt        *time.Time
	Applications    int
	TrustScore      *float64
}

type CandidateProfile struct {
	ID              uuid.UUID
	Skills          []string
	Experience      string
	YearsExperience *float64
	WorkMode        string
	Location        string
	DesiredSalary   *SalaryRange
	Industry        string
}

type RankedJob struct {
	JobID       uuid.UUID
	FinalScore  float64
	Features    FeatureVector
	Explanation string
}
