package models

const (
	// MinWeight and MaxWeight bound a per-dimension weight.
	MinWeight = 0
	MaxWeight = 100

	// DefaultWeight is assigned to every dimension of a fresh profile and
	// substituted for any dimension missing from a stored weight map.
	DefaultWeight = 20

	// DefaultPracticalPreference is the neutral practical/theoretical
	// preference of a fresh profile.
	DefaultPracticalPreference = 50
)

// importanceWeights maps the five-step importance scale shown to users onto
// stored weights. The steps are intentionally uneven so that "very important"
// dominates the weighted sum.
var importanceWeights = map[int]int{
	1: 0,
	2: 10,
	3: 20,
	4: 50,
	5: 80,
}

// WeightForImportance converts an importance level (1-5) into its stored
// weight. ok is false when level is outside the scale.
func WeightForImportance(level int) (weight int, ok bool) {
	weight, ok = importanceWeights[level]
	return weight, ok
}

// ImportanceForWeight converts a stored weight back into the closest
// importance level. Weights written through the API always match the table
// exactly; anything else snaps to the nearest step, lower level winning ties.
func ImportanceForWeight(weight int) int {
	best, bestDiff := 1, MaxWeight+1
	for level := 1; level <= 5; level++ {
		diff := importanceWeights[level] - weight
		if diff < 0 {
			diff = -diff
		}
		if diff < bestDiff {
			best, bestDiff = level, diff
		}
	}
	return best
}

// DefaultWeights returns a weight map with every dimension at DefaultWeight.
func DefaultWeights() map[Dimension]int {
	weights := make(map[Dimension]int, len(AllDimensions()))
	for _, d := range AllDimensions() {
		weights[d] = DefaultWeight
	}
	return weights
}
