package nasai

import (
	"math"
	"testing"
)

func TestEvaluateEmptyLayerList(t *testing.T) {
	for dataset, baseline := range datasetBaselines {
		eval := EvaluateArchitecture(nil, dataset)
		if eval.ParameterCount != 0 {
			t.Errorf("%s: expected 0 params, got %d", dataset, eval.ParameterCount)
		}
		if eval.EstimatedAccuracy != baseline {
			t.Errorf("%s: expected baseline %v exactly, got %v", dataset, baseline, eval.EstimatedAccuracy)
		}
		if eval.LayerCount != 0 || eval.FLOPs != 0 {
			t.Errorf("%s: expected empty evaluation, got %+v", dataset, eval)
		}
	}
}

func TestEvaluateUnknownDatasetUsesCustomBaseline(t *testing.T) {
	eval := EvaluateArchitecture(nil, "svhn")
	if eval.EstimatedAccuracy != datasetBaselines["custom"] {
		t.Fatalf("expected custom baseline, got %v", eval.EstimatedAccuracy)
	}
}

func TestEvaluateConv2dFormula(t *testing.T) {
	layers := []LayerSpec{{Type: "conv2d", Filters: 64, KernelSize: 3}}
	eval := EvaluateArchitecture(layers, "cifar10")

	// 64 filters over 3 input channels: 64*(3*3*3+1) = 1792.
	if eval.ParameterCount != 1792 {
		t.Fatalf("conv2d params: got %d, want 1792", eval.ParameterCount)
	}
	if eval.FLOPs != 1792*2*featureMapCells {
		t.Fatalf("conv2d flops: got %d", eval.FLOPs)
	}
	if eval.EstimatedAccuracy <= datasetBaselines["cifar10"] {
		t.Fatalf("accuracy should exceed baseline with params > 0: %v", eval.EstimatedAccuracy)
	}
}

func TestEvaluateWidthFlowsForward(t *testing.T) {
	layers := []LayerSpec{
		{Type: "conv2d", Filters: 32, KernelSize: 3},
		{Type: "dense", Units: 10},
	}
	eval := EvaluateArchitecture(layers, "cifar10")

	conv := int64(32) * (3*3*3 + 1)  // 896
	dense := int64(10) * (32 + 1)    // dense sees the conv width
	if eval.ParameterCount != conv+dense {
		t.Fatalf("params: got %d, want %d", eval.ParameterCount, conv+dense)
	}
}

func TestEvaluateAccuracyClamped(t *testing.T) {
	layers := make([]LayerSpec, 0, 50)
	for i := 0; i < 50; i++ {
		layers = append(layers, LayerSpec{Type: "dense", Units: 4096})
	}
	eval := EvaluateArchitecture(layers, "cifar10")
	if eval.EstimatedAccuracy > maxEstimatedAccuracy {
		t.Fatalf("accuracy not clamped: %v", eval.EstimatedAccuracy)
	}
}

func TestEvaluateUnknownLayerTypeIgnored(t *testing.T) {
	eval := EvaluateArchitecture([]LayerSpec{{Type: "lstm", Units: 256}}, "cifar10")
	if eval.ParameterCount != 0 {
		t.Fatalf("unknown layer contributed params: %d", eval.ParameterCount)
	}
	if eval.LayerCount != 1 {
		t.Fatalf("layer count should still count the entry: %d", eval.LayerCount)
	}
}

func TestEvaluateEfficiencyPositiveAndBounded(t *testing.T) {
	eval := EvaluateArchitecture([]LayerSpec{{Type: "conv2d"}}, "imagenet")
	if eval.EfficiencyScore <= 0 || eval.EfficiencyScore > 1 {
		t.Fatalf("efficiency out of range: %v", eval.EfficiencyScore)
	}
	if math.IsNaN(eval.EfficiencyScore) {
		t.Fatalf("efficiency is NaN")
	}
}
