package nasai

import "fmt"

type ComparisonInput struct {
	Name    string      `json:"name"`
	Layers  []LayerSpec `json:"layers"`
	Dataset string      `json:"dataset"`
}

type ComparisonEntry struct {
	Name       string     `json:"name"`
	Evaluation Evaluation `json:"evaluation"`
}

type Comparison struct {
	Entries []ComparisonEntry `json:"entries"`
	Winner  string            `json:"winner"`
	Summary string            `json:"summary"`
}

// CompareArchitectures evaluates each descriptor with the same fixed
// formulas and picks the highest efficiency score.
func CompareArchitectures(inputs []ComparisonInput) *Comparison {
	cmp := &Comparison{Entries: make([]ComparisonEntry, 0, len(inputs))}

	bestScore := -1.0
	for i, input := range inputs {
		name := input.Name
		if name == "" {
			name = fmt.Sprintf("architecture-%d", i+1)
		}
		eval := EvaluateArchitecture(input.Layers, input.Dataset)
		cmp.Entries = append(cmp.Entries, ComparisonEntry{Name: name, Evaluation: eval})
		if eval.EfficiencyScore > bestScore {
			bestScore = eval.EfficiencyScore
			cmp.Winner = name
		}
	}

	if cmp.Winner != "" {
		cmp.Summary = fmt.Sprintf(
			"%s has the best efficiency score (%.4f): it delivers the most estimated accuracy per unit of compute.",
			cmp.Winner, bestScore,
		)
	}
	return cmp
}
