package events

import "github.com/maxaizer/jobfit/internal/domain/models"

var JobAnalyzedTopic = "JobAnalyzedEvent"

type JobAnalyzed struct {
	Job            models.AnalyzedJob
	Confidence     float64
	BelowThreshold bool
}
