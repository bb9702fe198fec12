package models

// Dimension identifies one of the ten scored aspects of a course experience.
// The string values double as JSON object keys in the weight and score maps,
// so they are part of the stored schema and must not change.
type Dimension string

const (
	DimensionWorkload             Dimension = "workload"
	DimensionDifficulty           Dimension = "difficulty"
	DimensionLearningGain         Dimension = "learning_gain"
	DimensionTeachingQuality      Dimension = "teaching_quality"
	DimensionAssessmentFairness   Dimension = "assessment_fairness"
	DimensionPracticalTheoretical Dimension = "practical_theoretical"
	DimensionRelevance            Dimension = "relevance"
	DimensionMaterials            Dimension = "materials"
	DimensionSupport              Dimension = "support"
	DimensionOrganization         Dimension = "organization"
)

// AllDimensions returns the ten dimensions in display order.
func AllDimensions() []Dimension {
	return []Dimension{
		DimensionWorkload,
		DimensionDifficulty,
		DimensionLearningGain,
		DimensionTeachingQuality,
		DimensionAssessmentFairness,
		DimensionPracticalTheoretical,
		DimensionRelevance,
		DimensionMaterials,
		DimensionSupport,
		DimensionOrganization,
	}
}

// Valid reports whether d is one of the ten known dimensions.
func (d Dimension) Valid() bool {
	switch d {
	case DimensionWorkload, DimensionDifficulty, DimensionLearningGain,
		DimensionTeachingQuality, DimensionAssessmentFairness,
		DimensionPracticalTheoretical, DimensionRelevance,
		DimensionMaterials, DimensionSupport, DimensionOrganization:
		return true
	}
	return false
}

// ScoreRange returns the valid score bounds for a dimension. Nine dimensions
// are scored 1-5; practical_theoretical is a 0-100 balance value (0 = fully
// theoretical, 100 = fully practical).
func (d Dimension) ScoreRange() (min, max int) {
	if d == DimensionPracticalTheoretical {
		return 0, 100
	}
	return 1, 5
}
