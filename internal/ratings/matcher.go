package ratings

import "strings"

// BestMatch picks the mentor whose industry keywords best overlap the
// business industry; ties break on priority, then id, so the result is
// deterministic. Returns false when the list is empty.
func BestMatch(mentors []Mentor, industry string) (Mentor, bool) {
	if len(mentors) == 0 {
		return Mentor{}, false
	}

	needle := strings.ToLower(industry)
	best := mentors[0]
	bestScore := overlapScore(best, needle)
	for _, m := range mentors[1:] {
		score := overlapScore(m, needle)
		if score > bestScore {
			best, bestScore = m, score
			continue
		}
		if score == bestScore {
			if m.Priority < best.Priority || (m.Priority == best.Priority && m.ID < best.ID) {
				best = m
			}
		}
	}
	return best, true
}

func overlapScore(m Mentor, industry string) int {
	if industry == "" {
		return 0
	}
	score := 0
	for _, kw := range m.Industries {
		if kw == "" {
			continue
		}
		if strings.Contains(industry, strings.ToLower(kw)) {
			score++
		}
	}
	return score
}
