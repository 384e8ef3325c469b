package docs

import "strings"

const maxKeyPoints = 6

// ExtractKeyPoints derives up to six highlight strings from generated text.
// Matching is case-insensitive substring search over the category's ordered
// keyword list; fallbacks fill the remainder in fixed priority order. The
// result is deterministic for a given text.
func ExtractKeyPoints(cat Category, text string) []string {
	lower := strings.ToLower(text)

	points := make([]string, 0, maxKeyPoints)
	seen := make(map[string]struct{})

	for _, kp := range cat.Keywords {
		if len(points) == maxKeyPoints {
			return points
		}
		if !strings.Contains(lower, kp.Keyword) {
			continue
		}
		if _, dup := seen[kp.Point]; dup {
			continue
		}
		seen[kp.Point] = struct{}{}
		points = append(points, kp.Point)
	}

	for _, fb := range cat.Fallbacks {
		if len(points) == maxKeyPoints {
			break
		}
		if _, dup := seen[fb]; dup {
			continue
		}
		seen[fb] = struct{}{}
		points = append(points, fb)
	}
	return points
}
