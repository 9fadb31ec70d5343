package dto

import "github.com/google/uuid"

type FeedbackRequest struct {
	CandidateID uuid.UUID             `json:"candidate_id"`
	JobID       uuid.UUID             `json:"job_id"`
	Interaction string                `json:"interaction"`
	Features    FeatureVectorResponse `json:"features"`
}
