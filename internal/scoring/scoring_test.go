package scoring

import (
	"testing"

	"github.com/alexschwind/ratemycourses/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEmptyScores(t *testing.T) {
	result := Compute(models.DefaultWeights(), 50, map[models.Dimension]int{})
	assert.Nil(t, result)

	result = Compute(models.DefaultWeights(), 50, nil)
	assert.Nil(t, result)
}

func TestComputeAllWeightsZero(t *testing.T) {
	weights := make(map[models.Dimension]int)
	for _, d := range models.AllDimensions() {
		weights[d] = 0
	}
	scores := map[models.Dimension]int{
		models.DimensionWorkload:   5,
		models.DimensionDifficulty: 3,
	}

	assert.Nil(t, Compute(weights, 50, scores))
}

func TestComputeSingleDimension(t *testing.T) {
	// With one weighted dimension the result is that dimension's score.
	weights := map[models.Dimension]int{models.DimensionWorkload: 80}
	for score := 1; score <= 5; score++ {
		result := Compute(weights, 50, map[models.Dimension]int{models.DimensionWorkload: score})
		require.NotNil(t, result)
		assert.Equal(t, float64(score), *result)
	}
}

func TestComputeWeightedAverage(t *testing.T) {
	weights := map[models.Dimension]int{
		models.DimensionWorkload:   20,
		models.DimensionDifficulty: 20,
	}
	scores := map[models.Dimension]int{
		models.DimensionWorkload:   5,
		models.DimensionDifficulty: 3,
	}

	// (20*5 + 20*3) / 40 = 4.0
	result := Compute(weights, 50, scores)
	require.NotNil(t, result)
	assert.Equal(t, 4.0, *result)

	// Shifting weight toward workload pulls the result toward its score.
	weights[models.DimensionWorkload] = 80
	// (80*5 + 20*3) / 100 = 4.6
	result = Compute(weights, 50, scores)
	require.NotNil(t, result)
	assert.Equal(t, 4.6, *result)
}

func TestComputeMissingWeightUsesDefault(t *testing.T) {
	// difficulty is absent from the weight map and counts as DefaultWeight.
	weights := map[models.Dimension]int{models.DimensionWorkload: 20}
	scores := map[models.Dimension]int{
		models.DimensionWorkload:   5,
		models.DimensionDifficulty: 3,
	}

	result := Compute(weights, 50, scores)
	require.NotNil(t, result)
	assert.Equal(t, 4.0, *result)
}

func TestComputeZeroWeightExcludesDimension(t *testing.T) {
	weights := map[models.Dimension]int{
		models.DimensionWorkload:   50,
		models.DimensionDifficulty: 0,
	}
	scores := map[models.Dimension]int{
		models.DimensionWorkload:   4,
		models.DimensionDifficulty: 1,
	}

	result := Compute(weights, 50, scores)
	require.NotNil(t, result)
	assert.Equal(t, 4.0, *result)
}

func TestComputeUnknownScoreKeysIgnored(t *testing.T) {
	scores := map[models.Dimension]int{
		models.Dimension("retired_dimension"): 5,
	}
	assert.Nil(t, Compute(models.DefaultWeights(), 50, scores))

	scores[models.DimensionWorkload] = 3
	result := Compute(models.DefaultWeights(), 50, scores)
	require.NotNil(t, result)
	assert.Equal(t, 3.0, *result)
}

func TestComputePracticalAlignment(t *testing.T) {
	weights := map[models.Dimension]int{models.DimensionPracticalTheoretical: 40}

	tests := []struct {
		name       string
		preference int
		balance    int
		want       float64
	}{
		{"perfect match", 50, 50, 5.0},
		{"perfect match at extreme", 0, 0, 5.0},
		{"opposite extremes", 0, 100, 1.0},
		{"opposite extremes reversed", 100, 0, 1.0},
		{"half scale apart", 50, 100, 3.0},
		{"quarter scale apart", 40, 65, 4.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := map[models.Dimension]int{models.DimensionPracticalTheoretical: tt.balance}
			result := Compute(weights, tt.preference, scores)
			require.NotNil(t, result)
			assert.Equal(t, tt.want, *result)
		})
	}
}

func TestComputeRounding(t *testing.T) {
	// 25/8 = 3.125 rounds half away from zero to 3.13.
	weights := map[models.Dimension]int{
		models.DimensionWorkload:   7,
		models.DimensionDifficulty: 1,
	}
	scores := map[models.Dimension]int{
		models.DimensionWorkload:   3,
		models.DimensionDifficulty: 4,
	}
	result := Compute(weights, 50, scores)
	require.NotNil(t, result)
	assert.Equal(t, 3.13, *result)

	// 7/3 = 2.333... rounds to 2.33.
	weights = map[models.Dimension]int{
		models.DimensionWorkload:     1,
		models.DimensionDifficulty:   1,
		models.DimensionLearningGain: 1,
	}
	scores = map[models.Dimension]int{
		models.DimensionWorkload:     1,
		models.DimensionDifficulty:   2,
		models.DimensionLearningGain: 4,
	}
	result = Compute(weights, 50, scores)
	require.NotNil(t, result)
	assert.Equal(t, 2.33, *result)
}

func TestMean(t *testing.T) {
	v1, v2, v3 := 4.0, 3.5, 2.0

	result := Mean([]*float64{&v1, &v2, &v3})
	require.NotNil(t, result)
	assert.Equal(t, 3.17, *result) // 9.5/3 rounded

	// nil entries are skipped
	result = Mean([]*float64{&v1, nil, &v2})
	require.NotNil(t, result)
	assert.Equal(t, 3.75, *result)

	assert.Nil(t, Mean(nil))
	assert.Nil(t, Mean([]*float64{nil, nil}))
}

func TestComputeStaysWithinScale(t *testing.T) {
	full := make(map[models.Dimension]int)
	for _, d := range models.AllDimensions() {
		_, max := d.ScoreRange()
		full[d] = max
	}
	// Practical balance at the preference keeps every dimension at 5.
	result := Compute(models.DefaultWeights(), 100, full)
	require.NotNil(t, result)
	assert.Equal(t, 5.0, *result)

	low := make(map[models.Dimension]int)
	for _, d := range models.AllDimensions() {
		min, _ := d.ScoreRange()
		low[d] = min
	}
	// Balance 0 against preference 100 scores practical_theoretical at 1.
	result = Compute(models.DefaultWeights(), 100, low)
	require.NotNil(t, result)
	assert.Equal(t, 1.0, *result)
}

func BenchmarkCompute(b *testing.B) {
	weights := models.DefaultWeights()
	scores := make(map[models.Dimension]int, 10)
	for _, d := range models.AllDimensions() {
		scores[d] = 4
	}
	scores[models.DimensionPracticalTheoretical] = 70

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Compute(weights, 50, scores)
	}
}
