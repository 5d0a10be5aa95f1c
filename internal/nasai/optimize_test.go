package nasai

import "testing"

func TestStartOptimizationInitializes(t *testing.T) {
	g := NewSeededGenerator(1)

	session, err := g.StartOptimization("evolutionary", 5)
	if err != nil {
		t.Fatalf("StartOptimization: %v", err)
	}
	if session.Status != "initialized" {
		t.Fatalf("status: got %q, want initialized", session.Status)
	}
	if session.SearchID == "" {
		t.Fatalf("missing searchId")
	}
	if len(session.Candidates) > 5 {
		t.Fatalf("candidates exceed parallelism: %d", len(session.Candidates))
	}
	for _, cand := range session.Candidates {
		if cand.ID == "" || len(cand.Layers) == 0 {
			t.Fatalf("malformed candidate: %+v", cand)
		}
		if cand.Score < 0 || cand.Score > 1 {
			t.Fatalf("candidate score out of range: %v", cand.Score)
		}
	}
}

func TestStartOptimizationRejectsUnknownAlgorithm(t *testing.T) {
	g := NewSeededGenerator(1)
	if _, err := g.StartOptimization("simulated-annealing", 4); err == nil {
		t.Fatalf("expected error for unsupported algorithm")
	}
}

func TestStartOptimizationClampsParallelism(t *testing.T) {
	g := NewSeededGenerator(2)

	session, err := g.StartOptimization("random", 0)
	if err != nil {
		t.Fatalf("StartOptimization: %v", err)
	}
	if len(session.Candidates) != 4 {
		t.Fatalf("default parallelism: got %d, want 4", len(session.Candidates))
	}

	session, err = g.StartOptimization("random", 1000)
	if err != nil {
		t.Fatalf("StartOptimization: %v", err)
	}
	if len(session.Candidates) != 32 {
		t.Fatalf("clamped parallelism: got %d, want 32", len(session.Candidates))
	}
}

func TestStatusRoundTripsSearchID(t *testing.T) {
	g := NewSeededGenerator(3)

	st := g.Status("search-abc")
	if st.SearchID != "search-abc" {
		t.Fatalf("searchId not round-tripped: %q", st.SearchID)
	}
	if st.Status != "searching" {
		t.Fatalf("status: got %q", st.Status)
	}
	if st.BestScore < st.AverageScore {
		t.Fatalf("best score below average: best=%v avg=%v", st.BestScore, st.AverageScore)
	}

	if got := g.Stop("search-abc"); got.Status != "stopped" {
		t.Fatalf("stop status: got %q", got.Status)
	}
	if got := g.Update("search-abc"); got.Status != "updated" {
		t.Fatalf("update status: got %q", got.Status)
	}
}

func TestSuggestImprovementsHeuristics(t *testing.T) {
	suggestions := SuggestImprovements(nil, "cifar10")
	if len(suggestions) != 1 || suggestions[0].Area != "design" {
		t.Fatalf("empty architecture suggestion: %+v", suggestions)
	}

	layers := []LayerSpec{
		{Type: "conv2d", Filters: 64, KernelSize: 3},
		{Type: "dense", Units: 1024},
	}
	suggestions = SuggestImprovements(layers, "cifar10")
	areas := map[string]bool{}
	for _, s := range suggestions {
		areas[s.Area] = true
	}
	if !areas["regularization"] {
		t.Fatalf("expected regularization advice for missing batch_norm: %+v", suggestions)
	}
	if !areas["size"] {
		t.Fatalf("expected size advice for the 1024-unit dense layer: %+v", suggestions)
	}
}

func TestCompareArchitecturesPicksEfficiencyWinner(t *testing.T) {
	cmp := CompareArchitectures([]ComparisonInput{
		{Name: "heavy", Layers: []LayerSpec{{Type: "dense", Units: 8192}, {Type: "dense", Units: 8192}}, Dataset: "cifar10"},
		{Name: "light", Layers: []LayerSpec{{Type: "conv2d", Filters: 16, KernelSize: 3}}, Dataset: "cifar10"},
	})
	if len(cmp.Entries) != 2 {
		t.Fatalf("entries: %+v", cmp.Entries)
	}
	if cmp.Winner != "light" {
		t.Fatalf("winner: got %q, want light", cmp.Winner)
	}
	if cmp.Summary == "" {
		t.Fatalf("missing summary")
	}
}
