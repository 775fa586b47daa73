package extractor

import (
	"regexp"

	"wiki-quiz/internal/domain"
)

// Naive pattern matchers, not entity recognition. False positives are
// expected and acceptable; the lists only feed prompt context.
var (
	peoplePattern = regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`)
	orgPattern    = regexp.MustCompile(`\b[A-Z][a-z]+ (?:University|College|Institute|Company|Corporation|Foundation)\b`)
	locPattern    = regexp.MustCompile(`\b[A-Z][a-z]+, [A-Z][a-z]+\b`)
)

// extractEntities runs the three category patterns over text and returns
// deduplicated lists capped at domain.EntityCategoryLimit each.
func extractEntities(text string) domain.Entities {
	return domain.Entities{
		People:        dedupeCap(peoplePattern.FindAllString(text, -1)),
		Organizations: dedupeCap(orgPattern.FindAllString(text, -1)),
		Locations:     dedupeCap(locPattern.FindAllString(text, -1)),
	}
}

func dedupeCap(matches []string) []string {
	seen := make(map[string]bool, len(matches))
	out := make([]string, 0, domain.EntityCategoryLimit)
	for _, m := range matches {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
		if len(out) == domain.EntityCategoryLimit {
			break
		}
	}
	return out
}
