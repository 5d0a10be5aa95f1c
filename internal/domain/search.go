package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Search strategies accepted by the dashboard. Stored as plain strings:
// the schema never enforced a transition model and callers may write any
// value at any time.
const (
	StrategyEvolutionary  = "evolutionary"
	StrategyReinforcement = "reinforcement"
	StrategyGradient      = "gradient"
	StrategyBayesian      = "bayesian"
	StrategyRandom        = "random"
)

const (
	DatasetImageNet = "imagenet"
	DatasetCIFAR10  = "cifar10"
	DatasetCIFAR100 = "cifar100"
	DatasetCustom   = "custom"
)

const (
	StatusPending   = "pending"
	StatusTraining  = "training"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
)

type SearchExperiment struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"not null;column:name" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	Strategy    string    `gorm:"not null;default:'evolutionary';column:strategy" json:"strategy"`
	Dataset     string    `gorm:"not null;default:'cifar10';column:dataset" json:"dataset"`

	SearchBudget   int     `gorm:"not null;default:100;column:search_budget" json:"search_budget"`
	PopulationSize int     `gorm:"not null;default:20;column:population_size" json:"population_size"`
	MaxEpochs      int     `gorm:"not null;default:50;column:max_epochs" json:"max_epochs"`
	TargetAccuracy float64 `gorm:"column:target_accuracy" json:"target_accuracy"`
	TargetLatency  float64 `gorm:"column:target_latency" json:"target_latency"`

	Status string `gorm:"not null;default:'pending';column:status" json:"status"`

	TotalArchitecturesTested int     `gorm:"not null;default:0;column:total_architectures_tested" json:"total_architectures_tested"`
	BestAccuracy             float64 `gorm:"not null;default:0;column:best_accuracy" json:"best_accuracy"`
	SearchTimeHours          float64 `gorm:"not null;default:0;column:search_time_hours" json:"search_time_hours"`
	GPUHours                 float64 `gorm:"not null;default:0;column:gpu_hours" json:"gpu_hours"`
	ConvergenceStatus        string  `gorm:"column:convergence_status" json:"convergence_status"`

	CreatedBy string `gorm:"not null;column:created_by" json:"created_by"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Architectures []NeuralArchitecture `gorm:"foreignKey:ExperimentID;constraint:OnDelete:CASCADE" json:"architectures,omitempty"`
}

func (SearchExperiment) TableName() string { return "search_experiment" }

type NeuralArchitecture struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ExperimentID uuid.UUID `gorm:"type:uuid;not null;index;column:experiment_id" json:"experiment_id"`
	Name         string    `gorm:"not null;column:name" json:"name"`

	// Opaque layer-by-layer description supplied by the client or a
	// generator; never interpreted beyond the evaluation formulas.
	ArchitectureJSON datatypes.JSON `gorm:"column:architecture_json" json:"architecture_json"`

	LayerCount      int     `gorm:"not null;default:0;column:layer_count" json:"layer_count"`
	TotalParameters int64   `gorm:"not null;default:0;column:total_parameters" json:"total_parameters"`
	FLOPs           int64   `gorm:"not null;default:0;column:flops" json:"flops"`
	ModelSizeMB     float64 `gorm:"not null;default:0;column:model_size_mb" json:"model_size_mb"`

	Generation int `gorm:"not null;default:0;column:generation" json:"generation"`
	// Lineage ids from prior generations. Unenforced: ids may reference
	// rows that no longer exist.
	ParentIDs datatypes.JSON `gorm:"column:parent_ids" json:"parent_ids"`

	Accuracy  float64 `gorm:"not null;default:0;column:accuracy" json:"accuracy"`
	Loss      float64 `gorm:"not null;default:0;column:loss" json:"loss"`
	LatencyMS float64 `gorm:"not null;default:0;column:latency_ms" json:"latency_ms"`
	MemoryMB  float64 `gorm:"not null;default:0;column:memory_mb" json:"memory_mb"`
	EnergyMJ  float64 `gorm:"not null;default:0;column:energy_mj" json:"energy_mj"`

	OverallScore    float64 `gorm:"not null;default:0;column:overall_score" json:"overall_score"`
	EfficiencyRatio float64 `gorm:"not null;default:0;column:efficiency_ratio" json:"efficiency_ratio"`
	ParetoRank      int     `gorm:"not null;default:0;column:pareto_rank" json:"pareto_rank"`

	Status string `gorm:"not null;default:'pending';column:status" json:"status"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (NeuralArchitecture) TableName() string { return "neural_architecture" }

type SearchProgress struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ExperimentID uuid.UUID `gorm:"type:uuid;not null;index;column:experiment_id" json:"experiment_id"`

	Iteration  int `gorm:"not null;default:0;column:iteration" json:"iteration"`
	Generation int `gorm:"not null;default:0;column:generation" json:"generation"`

	BestAccuracySoFar      float64 `gorm:"not null;default:0;column:best_accuracy_so_far" json:"best_accuracy_so_far"`
	AverageAccuracy        float64 `gorm:"not null;default:0;column:average_accuracy" json:"average_accuracy"`
	ArchitecturesEvaluated int     `gorm:"not null;default:0;column:architectures_evaluated" json:"architectures_evaluated"`
	ElapsedSeconds         float64 `gorm:"not null;default:0;column:elapsed_seconds" json:"elapsed_seconds"`

	CPUUsagePercent    float64 `gorm:"not null;default:0;column:cpu_usage_percent" json:"cpu_usage_percent"`
	GPUUsagePercent    float64 `gorm:"not null;default:0;column:gpu_usage_percent" json:"gpu_usage_percent"`
	MemoryUsagePercent float64 `gorm:"not null;default:0;column:memory_usage_percent" json:"memory_usage_percent"`

	ConvergenceMetric float64 `gorm:"not null;default:0;column:convergence_metric" json:"convergence_metric"`
	Notes             string  `gorm:"column:notes" json:"notes"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (SearchProgress) TableName() string { return "search_progress" }
