package models

import (
	"fmt"
	"time"
)

type JobStatus string

const (
	StatusAnalyzed     JobStatus = "analyzed"
	StatusApplied      JobStatus = "applied"
	StatusRejected     JobStatus = "rejected"
	StatusInterviewing JobStatus = "interviewing"
	StatusOffer        JobStatus = "offer"
	StatusAccepted     JobStatus = "accepted"
)

var jobStatuses = []JobStatus{StatusAnalyzed, StatusApplied, StatusRejected, StatusInterviewing, StatusOffer, StatusAccepted}

func ToJobStatus(s string) (JobStatus, error) {
	for _, status := range jobStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", fmt.Errorf("invalid job status: %q", s)
}

// AnalyzedJob is the persisted record of an analysis. Status, Notes and ApplicationDate
// are owned by the user and survive re-analysis of the same job.
type AnalyzedJob struct {
	JobID           string         `gorm:"primaryKey" json:"jobId"`
	URL             string         `json:"url"`
	Title           string         `json:"title"`
	Company         string         `json:"company"`
	Source          JobSource      `json:"source,omitempty"`
	AnalyzedDate    time.Time      `json:"analyzedDate"`
	MatchScore      int            `json:"matchScore"`
	Recommendation  Recommendation `json:"recommendation"`
	Status          JobStatus      `gorm:"index" json:"status"`
	MatchDetails    MatchDetails   `gorm:"serializer:json" json:"matchDetails"`
	Notes           string         `json:"notes,omitempty"`
	ApplicationDate *time.Time     `json:"applicationDate,omitempty"`
	LastUpdated     time.Time      `gorm:"index" json:"lastUpdated"`
}

func NewAnalyzedJob(job JobPosting, result AnalysisResult) AnalyzedJob {
	return AnalyzedJob{
		JobID:          result.JobID,
		URL:            job.URL,
		Title:          job.Title,
		Company:        job.Company,
		Source:         job.Source,
		AnalyzedDate:   result.AnalyzedDate,
		MatchScore:     result.MatchScore,
		Recommendation: result.Recommendation,
		Status:         StatusAnalyzed,
		MatchDetails:   result.MatchDetails,
		LastUpdated:    result.AnalyzedDate,
	}
}
