package dispatchers

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type suggestion struct {
	name     string
	distance int
}

// FindSimilarCommands returns up to maxResults identifiers of nodes that are
// within a small edit distance of input.
func FindSimilarCommands(input string, nodes []*Node, maxResults int) []string {
	const maxDistance = 3

	seen := make(map[string]bool)
	var suggestions []suggestion

	for _, node := range nodes {
		for _, id := range node.identifiers {
			if seen[id] {
				continue
			}
			seen[id] = true

			dist := levenshtein.ComputeDistance(strings.ToLower(input), strings.ToLower(id))
			if dist <= maxDistance && dist > 0 {
				suggestions = append(suggestions, suggestion{name: id, distance: dist})
			}
		}
	}

	// Sort by distance, then alphabetically for stability
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}
	return result
}
