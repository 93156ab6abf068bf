package dto

import "github.com/spec-kit/directory-service/internal/domain"

// JobUpsertRequest payload.
type JobUpsertRequest struct {
	Job domain.Job `json:"job"`
}

// JobMutationResponse reports the resulting collection size.
type JobMutationResponse struct {
	OK    bool `json:"ok"`
	Total int  `json:"total"`
}
