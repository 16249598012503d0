package scoring

import "github.com/maxaizer/jobfit/internal/domain/models"

const (
	ApplyThreshold = 70
	MaybeThreshold = 50

	maxMissingRequired      = 3
	applyMinMatched         = 5
	applyMaxMissingRequired = 1
	maybeMinMatched         = 3
)

func Recommend(matchScore, missingRequiredCount, matchedCount int) models.Recommendation {
	if missingRequiredCount > maxMissingRequired {
		return models.RecommendationPass
	}

	if matchScore >= ApplyThreshold && matchedCount >= applyMinMatched && missingRequiredCount <= applyMaxMissingRequired {
		return models.RecommendationApply
	}

	if matchScore >= MaybeThreshold && matchedCount >= maybeMinMatched {
		return models.RecommendationMaybe
	}

	return models.RecommendationPass
}
