package nasai

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Algorithms the optimization endpoint accepts.
var supportedAlgorithms = map[string]bool{
	"evolutionary":  true,
	"bayesian":      true,
	"gradient":      true,
	"reinforcement": true,
	"random":        true,
}

func SupportedAlgorithm(name string) bool { return supportedAlgorithms[name] }

type Candidate struct {
	ID     string      `json:"id"`
	Layers []LayerSpec `json:"layers"`
	Score  float64     `json:"score"`
}

type OptimizationSession struct {
	SearchID    string      `json:"searchId"`
	Algorithm   string      `json:"algorithm"`
	Status      string      `json:"status"`
	Candidates  []Candidate `json:"candidates"`
	StartedAt   time.Time   `json:"started_at"`
	Parallelism int         `json:"parallelism"`
}

type OptimizationStatus struct {
	SearchID               string  `json:"searchId"`
	Status                 string  `json:"status"`
	Iteration              int     `json:"iteration"`
	BestScore              float64 `json:"best_score"`
	AverageScore           float64 `json:"average_score"`
	ArchitecturesEvaluated int     `json:"architectures_evaluated"`
	ConvergenceMetric      float64 `json:"convergence_metric"`
}

// Generator fabricates optimization sessions and progress figures. It holds
// no session state: every status call draws fresh numbers, and the searchId
// is only round-tripped for the caller's benefit.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator() *Generator {
	return &Generator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededGenerator pins the random source, for tests.
func NewSeededGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

func (g *Generator) StartOptimization(algorithm string, parallelism int) (*OptimizationSession, error) {
	if !SupportedAlgorithm(algorithm) {
		return nil, fmt.Errorf("unsupported algorithm %q", algorithm)
	}
	if parallelism <= 0 {
		parallelism = 4
	}
	if parallelism > 32 {
		parallelism = 32
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	candidates := make([]Candidate, 0, parallelism)
	for i := 0; i < parallelism; i++ {
		candidates = append(candidates, Candidate{
			ID:     uuid.NewString(),
			Layers: g.randomLayersLocked(),
			Score:  0.5 + g.rng.Float64()*0.4,
		})
	}

	return &OptimizationSession{
		SearchID:    uuid.NewString(),
		Algorithm:   algorithm,
		Status:      "initialized",
		Candidates:  candidates,
		StartedAt:   time.Now().UTC(),
		Parallelism: parallelism,
	}, nil
}

func (g *Generator) Status(searchID string) *OptimizationStatus {
	g.mu.Lock()
	defer g.mu.Unlock()

	best := 0.8 + g.rng.Float64()*0.15
	return &OptimizationStatus{
		SearchID:               searchID,
		Status:                 "searching",
		Iteration:              1 + g.rng.Intn(200),
		BestScore:              best,
		AverageScore:           best - g.rng.Float64()*0.1,
		ArchitecturesEvaluated: 1 + g.rng.Intn(500),
		ConvergenceMetric:      g.rng.Float64(),
	}
}

// Update acknowledges a parameter change. Nothing is threaded through to
// later calls, matching the status endpoint.
func (g *Generator) Update(searchID string) *OptimizationStatus {
	st := g.Status(searchID)
	st.Status = "updated"
	return st
}

func (g *Generator) Stop(searchID string) *OptimizationStatus {
	st := g.Status(searchID)
	st.Status = "stopped"
	return st
}

func (g *Generator) randomLayersLocked() []LayerSpec {
	depth := 3 + g.rng.Intn(6)
	layers := make([]LayerSpec, 0, depth)
	for i := 0; i < depth; i++ {
		switch g.rng.Intn(4) {
		case 0:
			layers = append(layers, LayerSpec{
				Type:       "conv2d",
				Filters:    16 << g.rng.Intn(4),
				KernelSize: []int{1, 3, 5}[g.rng.Intn(3)],
			})
		case 1:
			layers = append(layers, LayerSpec{Type: "dense", Units: 64 << g.rng.Intn(4)})
		case 2:
			layers = append(layers, LayerSpec{Type: "batch_norm"})
		default:
			layers = append(layers, LayerSpec{Type: "dropout", Rate: 0.1 + g.rng.Float64()*0.4})
		}
	}
	return layers
}
