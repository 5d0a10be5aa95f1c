package server

import (
	"math"
	"net/http"
	"testing"
)

func TestNasAIEvaluateEmptyLayersReturnsBaseline(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/nas-ai", map[string]any{
		"operation": "evaluate",
		"layers":    []any{},
		"dataset":   "cifar10",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	eval, _ := body["evaluation"].(map[string]any)
	accuracy, _ := eval["estimated_accuracy"].(float64)
	if math.Abs(accuracy-0.85) > 1e-9 {
		t.Fatalf("estimated_accuracy = %v, want exactly the cifar10 baseline 0.85", accuracy)
	}
	if params, _ := eval["parameter_count"].(float64); params != 0 {
		t.Fatalf("parameter_count = %v, want 0", params)
	}
}

func TestNasAIEvaluateCountsConvParameters(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/nas-ai", map[string]any{
		"operation": "evaluate",
		"layers":    []map[string]any{{"type": "conv2d", "filters": 64, "kernel_size": 3}},
		"dataset":   "imagenet",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	eval, _ := body["evaluation"].(map[string]any)
	// 64 * (3*3*3 + 1)
	if params, _ := eval["parameter_count"].(float64); params != 1792 {
		t.Fatalf("parameter_count = %v, want 1792", params)
	}
}

func TestNasAIUnknownOperation(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/nas-ai", map[string]any{"operation": "train"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "unknown_operation" {
		t.Fatalf("error = %v, want unknown_operation", body["error"])
	}
}

func TestNasAISuggestReturnsSuggestions(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/nas-ai", map[string]any{
		"operation": "suggest",
		"layers":    []map[string]any{{"type": "dense", "units": 1024}},
		"dataset":   "cifar10",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	suggestions, _ := body["suggestions"].([]any)
	if len(suggestions) == 0 {
		t.Fatalf("suggestions empty: %v", body)
	}
}

func TestNasAICompareRequiresArchitectures(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/nas-ai", map[string]any{
		"operation":     "compare",
		"architectures": []any{},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "architectures_required" {
		t.Fatalf("error = %v, want architectures_required", body["error"])
	}
}

func TestNasAIComparePicksWinner(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/nas-ai", map[string]any{
		"operation": "compare",
		"architectures": []map[string]any{
			{"name": "light", "layers": []map[string]any{{"type": "conv2d", "filters": 16}}, "dataset": "cifar10"},
			{"name": "heavy", "layers": []map[string]any{{"type": "dense", "units": 4096}, {"type": "dense", "units": 4096}}, "dataset": "cifar10"},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	comparison, _ := body["comparison"].(map[string]any)
	if comparison["winner"] != "light" {
		t.Fatalf("winner = %v, want light", comparison["winner"])
	}
}

func TestOptimizationStart(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/optimization", map[string]any{
		"algorithm":   "evolutionary",
		"parallelism": 8,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["status"] != "initialized" {
		t.Fatalf("status = %v, want initialized", body["status"])
	}
	if searchID, _ := body["searchId"].(string); searchID == "" {
		t.Fatalf("searchId missing: %v", body)
	}
	candidates, _ := body["candidates"].([]any)
	if len(candidates) != 8 {
		t.Fatalf("len(candidates) = %d, want 8", len(candidates))
	}
}

func TestOptimizationStartClampsParallelism(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/optimization", map[string]any{
		"algorithm":   "random",
		"parallelism": 500,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	candidates, _ := body["candidates"].([]any)
	if len(candidates) != 32 {
		t.Fatalf("len(candidates) = %d, want the 32 cap", len(candidates))
	}
}

func TestOptimizationStartRequiresAlgorithm(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/optimization", map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "algorithm_required" {
		t.Fatalf("error = %v, want algorithm_required", body["error"])
	}

	rec = doJSON(t, router, http.MethodPost, "/api/optimization", map[string]any{"algorithm": "simulated-annealing"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "unsupported_algorithm" {
		t.Fatalf("error = %v, want unsupported_algorithm", body["error"])
	}
}

func TestOptimizationStatusRoundTripsSearchID(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/optimization?searchId=abc-123", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["searchId"] != "abc-123" {
		t.Fatalf("searchId = %v, want abc-123", body["searchId"])
	}
	if body["status"] != "searching" {
		t.Fatalf("status = %v, want searching", body["status"])
	}
	best, _ := body["best_score"].(float64)
	average, _ := body["average_score"].(float64)
	if best < average {
		t.Fatalf("best_score %v < average_score %v", best, average)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/optimization", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status without searchId = %d, want 400", rec.Code)
	}
}

func TestOptimizationUpdateAndStop(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/api/optimization", map[string]any{"searchId": "abc-123"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, want 200", rec.Code)
	}
	if body := decodeBody(t, rec); body["status"] != "updated" {
		t.Fatalf("status = %v, want updated", body["status"])
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/optimization?searchId=abc-123", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("stop status = %d, want 200", rec.Code)
	}
	if body := decodeBody(t, rec); body["status"] != "stopped" {
		t.Fatalf("status = %v, want stopped", body["status"])
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/optimization", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("stop without searchId = %d, want 400", rec.Code)
	}
}
