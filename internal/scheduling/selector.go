package scheduling

import "sort"

const (
	maxDistanceMiles = 50.0
	defaultRating    = 4.0
)

// Score computes the candidate's weighted fitness: lighter workload (up to
// 10 points), shorter distance (up to 15), more experience (up to 5), higher
// rating (up to 10). An unrated worker scores as defaultRating.
func Score(c Candidate, rules RuleSet) float64 {
	score := float64(rules.MaxDailyBookings-c.Workload) * 10 / float64(rules.MaxDailyBookings)

	d := maxDistanceMiles - c.DistanceMiles
	if d > 0 {
		score += d * 15 / maxDistanceMiles
	}

	exp := float64(c.Worker.ExperienceYears)
	if exp > 5 {
		exp = 5
	}
	score += exp

	rating := c.Worker.Rating
	if rating == 0 {
		rating = defaultRating
	}
	score += rating * 2

	return score
}

// SelectBest returns the highest-scoring candidate. Equal scores keep the
// input order (stable sort), so the tie-break is deterministic: first in,
// first picked.
func SelectBest(candidates []Candidate, rules RuleSet) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Score(ranked[i], rules) > Score(ranked[j], rules)
	})
	return ranked[0], true
}
