package nasai

import (
	"fmt"
	"strings"
)

type Suggestion struct {
	Area    string `json:"area"`
	Message string `json:"message"`
	Impact  string `json:"impact"`
}

// SuggestImprovements inspects the layer list with fixed heuristics and
// returns advice text. Purely syntactic: no evaluation of the model happens.
func SuggestImprovements(layers []LayerSpec, dataset string) []Suggestion {
	eval := EvaluateArchitecture(layers, dataset)
	var out []Suggestion

	if len(layers) == 0 {
		return []Suggestion{{
			Area:    "design",
			Message: "The architecture has no layers yet. Start with a conv2d stem followed by batch_norm.",
			Impact:  "high",
		}}
	}

	hasBatchNorm := false
	hasDropout := false
	denseUnits := 0
	for _, layer := range layers {
		switch strings.ToLower(layer.Type) {
		case "batch_norm":
			hasBatchNorm = true
		case "dropout":
			hasDropout = true
		case "dense":
			if layer.Units > denseUnits {
				denseUnits = layer.Units
			}
		}
	}

	if !hasBatchNorm {
		out = append(out, Suggestion{
			Area:    "regularization",
			Message: "No batch_norm layers found. Adding one after each conv2d stabilizes training.",
			Impact:  "high",
		})
	}
	if !hasDropout && denseUnits > 0 {
		out = append(out, Suggestion{
			Area:    "regularization",
			Message: "Dense head without dropout tends to overfit. Add dropout with rate 0.3-0.5 before the classifier.",
			Impact:  "medium",
		})
	}
	if denseUnits > 512 {
		out = append(out, Suggestion{
			Area:    "size",
			Message: fmt.Sprintf("A dense layer with %d units dominates the parameter count. Consider halving it.", denseUnits),
			Impact:  "medium",
		})
	}
	if eval.ParameterCount > 5_000_000 {
		out = append(out, Suggestion{
			Area:    "size",
			Message: fmt.Sprintf("Total parameters (%d) exceed 5M. Depthwise-separable convolutions can cut this sharply.", eval.ParameterCount),
			Impact:  "high",
		})
	}
	if len(out) == 0 {
		out = append(out, Suggestion{
			Area:    "general",
			Message: fmt.Sprintf("The architecture looks balanced for %s. Estimated accuracy %.1f%%.", dataset, eval.EstimatedAccuracy*100),
			Impact:  "low",
		})
	}
	return out
}
