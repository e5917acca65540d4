package domain

// FeatureID identifies a navigable area of the application.
// Navigation is unguarded: any feature is reachable from any other.
type FeatureID string

const (
	FeatureOnboarding      FeatureID = "onboarding"
	FeatureStudyPlanner    FeatureID = "study-planner"
	FeatureMockTests       FeatureID = "mock-tests"
	FeatureEssayEvaluation FeatureID = "essay-evaluation"
	FeaturePerformance     FeatureID = "performance"
	FeatureRecommendations FeatureID = "recommendations"
	FeatureCommunity       FeatureID = "community"
	FeatureSettings        FeatureID = "settings"
)

func (f FeatureID) String() string { return string(f) }

// IsValid returns true if the feature is a known value.
func (f FeatureID) IsValid() bool {
	switch f {
	case FeatureOnboarding, FeatureStudyPlanner, FeatureMockTests,
		FeatureEssayEvaluation, FeaturePerformance, FeatureRecommendations,
		FeatureCommunity, FeatureSettings:
		return true
	}
	return false
}
