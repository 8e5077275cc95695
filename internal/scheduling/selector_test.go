package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Supremetechy/go-ham/internal/booking"
)

func candidate(name string, workload int, distance float64, years int, rating float64) Candidate {
	return Candidate{
		Worker:        booking.Worker{ID: name, Name: name, ExperienceYears: years, Rating: rating},
		Workload:      workload,
		DistanceMiles: distance,
	}
}

func TestScoreComponents(t *testing.T) {
	rules := testRules()

	// Idle, on-site, veteran, top-rated: the ceiling of every component.
	best := candidate("best", 0, 0, 10, 5.0)
	assert.InDelta(t, 10+15+5+10, Score(best, rules), 1e-9)

	// Full workload, beyond max distance, novice, unrated (defaults to 4.0).
	worst := candidate("worst", 6, 80, 0, 0)
	assert.InDelta(t, 0+0+0+8, Score(worst, rules), 1e-9)
}

func TestScoreMonotonicInRating(t *testing.T) {
	rules := testRules()
	low := candidate("low", 2, 10, 3, 4.0)
	high := candidate("high", 2, 10, 3, 4.9)
	assert.Greater(t, Score(high, rules), Score(low, rules))
}

func TestSelectBestPrefersHigherScore(t *testing.T) {
	rules := testRules()
	cands := []Candidate{
		candidate("busy", 5, 10, 5, 4.8),
		candidate("free", 0, 10, 5, 4.8),
	}
	best, ok := SelectBest(cands, rules)
	require.True(t, ok)
	assert.Equal(t, "free", best.Worker.Name)
}

func TestSelectBestTieKeepsInputOrder(t *testing.T) {
	rules := testRules()
	cands := []Candidate{
		candidate("first", 2, 10, 3, 4.5),
		candidate("second", 2, 10, 3, 4.5),
	}
	best, ok := SelectBest(cands, rules)
	require.True(t, ok)
	assert.Equal(t, "first", best.Worker.Name)

	// And the input slice is left untouched.
	assert.Equal(t, "first", cands[0].Worker.Name)
}

func TestSelectBestEmpty(t *testing.T) {
	_, ok := SelectBest(nil, testRules())
	assert.False(t, ok)
}
