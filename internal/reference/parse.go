// Package reference parses typed problem references such as "755/1,5,11"
// and resolves them against the table of contents.
package reference

import (
	"strings"

	"github.com/ethansocal/math-answers/internal/types"
)

// Parse splits raw input into problem references, one per label, in input
// order. Each line must be "<page>/<label>,<label>,...". Lines without
// exactly one "/" are dropped. Pages and labels are kept verbatim.
func Parse(text string) []types.RawProblem {
	problems := []types.RawProblem{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")

		parts := strings.Split(line, "/")
		if len(parts) != 2 {
			continue
		}
		page, labelList := parts[0], parts[1]

		labels := strings.Split(labelList, ",")
		if len(labels) == 0 {
			continue
		}
		for _, label := range labels {
			problems = append(problems, types.RawProblem{
				Page:  page,
				Label: label,
			})
		}
	}
	return problems
}
