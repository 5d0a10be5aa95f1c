package nasai

import (
	"math"
	"strings"
)

// LayerSpec is one client-supplied layer descriptor. Only the fields the
// fixed formulas read are declared; anything else in the payload is ignored.
type LayerSpec struct {
	Type       string `json:"type"`
	Filters    int    `json:"filters"`
	KernelSize int    `json:"kernel_size"`
	Units      int    `json:"units"`
	Rate       float64 `json:"rate"`
}

type Evaluation struct {
	ParameterCount    int64   `json:"parameter_count"`
	FLOPs             int64   `json:"flops"`
	ModelSizeMB       float64 `json:"model_size_mb"`
	EstimatedAccuracy float64 `json:"estimated_accuracy"`
	EfficiencyScore   float64 `json:"efficiency_score"`
	LayerCount        int     `json:"layer_count"`
}

// Dataset accuracy baselines. An empty layer list evaluates to exactly the
// baseline, which callers rely on.
var datasetBaselines = map[string]float64{
	"imagenet": 0.70,
	"cifar10":  0.85,
	"cifar100": 0.60,
	"custom":   0.75,
}

const (
	defaultInputChannels = 3
	featureMapCells      = 32 * 32
	maxEstimatedAccuracy = 0.98
)

func baselineFor(dataset string) float64 {
	if b, ok := datasetBaselines[strings.ToLower(strings.TrimSpace(dataset))]; ok {
		return b
	}
	return datasetBaselines["custom"]
}

// EvaluateArchitecture runs the fixed per-layer arithmetic over the supplied
// descriptors. The numbers are synthetic: they describe the shape of the
// input, not the behavior of any trained model.
func EvaluateArchitecture(layers []LayerSpec, dataset string) Evaluation {
	var params, flops int64

	// Channel/unit width flows forward through the stack; the first layer
	// sees RGB input.
	width := defaultInputChannels

	for _, layer := range layers {
		switch strings.ToLower(layer.Type) {
		case "conv2d":
			filters := layer.Filters
			if filters <= 0 {
				filters = 32
			}
			kernel := layer.KernelSize
			if kernel <= 0 {
				kernel = 3
			}
			layerParams := int64(filters) * (int64(kernel)*int64(kernel)*int64(width) + 1)
			params += layerParams
			flops += layerParams * 2 * featureMapCells
			width = filters
		case "dense":
			units := layer.Units
			if units <= 0 {
				units = 128
			}
			layerParams := int64(units) * (int64(width) + 1)
			params += layerParams
			flops += layerParams * 2
			width = units
		case "batch_norm":
			layerParams := int64(4 * width)
			params += layerParams
			flops += int64(width) * featureMapCells
		case "dropout":
			// No trainable parameters.
		default:
			// Unknown layer types contribute nothing.
		}
	}

	baseline := baselineFor(dataset)
	accuracy := baseline
	if params > 0 {
		accuracy += 0.02 * math.Log10(1+float64(params)/1000)
	}
	if accuracy > maxEstimatedAccuracy {
		accuracy = maxEstimatedAccuracy
	}

	// Cost term normalizes parameters and FLOPs into the same scale before
	// dividing, so tiny models do not get unbounded efficiency.
	cost := 1 + float64(params)/1e7 + float64(flops)/1e9

	return Evaluation{
		ParameterCount:    params,
		FLOPs:             flops,
		ModelSizeMB:       float64(params) * 4 / (1024 * 1024),
		EstimatedAccuracy: accuracy,
		EfficiencyScore:   accuracy / cost,
		LayerCount:        len(layers),
	}
}
