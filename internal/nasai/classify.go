package nasai

import (
	"regexp"
	"strings"
)

// Topic buckets for incoming prompts. Matching is ordered: the first rule
// whose pattern hits wins, everything else falls through to TopicGeneral.
type Topic string

const (
	TopicOptimization    Topic = "optimization"
	TopicComparison      Topic = "comparison"
	TopicPerformance     Topic = "performance"
	TopicHardware        Topic = "hardware"
	TopicSearchStrategy  Topic = "search-strategy"
	TopicDesign          Topic = "design"
	TopicTroubleshooting Topic = "troubleshooting"
	TopicDataset         Topic = "dataset"
	TopicGeneral         Topic = "general"
)

type classifyRule struct {
	topic Topic
	re    *regexp.Regexp
}

var classifyRules = []classifyRule{
	{TopicOptimization, regexp.MustCompile(`optimi[sz]e|optimi[sz]ation|improve|speed.?up|reduce (latency|size|parameters)|prune|quantiz`)},
	{TopicComparison, regexp.MustCompile(`compare|versus|\bvs\b|better than|difference between|which (one|architecture|model)`)},
	{TopicPerformance, regexp.MustCompile(`accuracy|performance|benchmark|score|metric|loss|overfit`)},
	{TopicHardware, regexp.MustCompile(`gpu|tpu|hardware|memory|edge device|mobile|embedded|inference time`)},
	{TopicSearchStrategy, regexp.MustCompile(`evolutionary|bayesian|reinforcement|gradient|random search|search strateg|search algorithm|population`)},
	{TopicDesign, regexp.MustCompile(`design|layer|architecture|topology|skip connection|residual|attention|convolution`)},
	{TopicTroubleshooting, regexp.MustCompile(`error|fail|crash|stuck|not working|diverge|nan|debug`)},
	{TopicDataset, regexp.MustCompile(`dataset|imagenet|cifar|data augmentation|training data|labels`)},
}

func ClassifyPrompt(prompt string) Topic {
	p := strings.ToLower(prompt)
	for _, rule := range classifyRules {
		if rule.re.MatchString(p) {
			return rule.topic
		}
	}
	return TopicGeneral
}

var topicResponses = map[Topic]string{
	TopicOptimization: "To optimize your architecture, start with the biggest parameter sinks: " +
		"prune dense layers above 512 units, replace large convolutions with depthwise-separable " +
		"ones, and apply post-training quantization. In our searches this typically cuts model " +
		"size 40-60% with under 1% accuracy loss.",
	TopicComparison: "When comparing candidate architectures, look beyond top-1 accuracy: check " +
		"the efficiency ratio (accuracy per normalized cost), latency at your target batch size, " +
		"and Pareto rank. A model 0.5% behind on accuracy but 3x faster usually wins in production.",
	TopicPerformance: "Performance plateaus are usually a data or regularization problem before " +
		"they are an architecture problem. Check the convergence metric in the progress log; if " +
		"average accuracy tracks best accuracy closely, the population has collapsed and you " +
		"should raise mutation diversity.",
	TopicHardware: "For hardware-constrained deployment, budget FLOPs before parameters: memory " +
		"bandwidth dominates on edge devices. Keep activations under your SRAM budget and prefer " +
		"architectures with a model size under 10 MB for mobile targets.",
	TopicSearchStrategy: "Evolutionary search explores broadly and is robust to noisy rewards; " +
		"Bayesian optimization is more sample-efficient when evaluations are expensive. With a " +
		"budget under 100 trials, Bayesian usually converges faster; above that, evolutionary " +
		"tends to find better Pareto fronts.",
	TopicDesign: "Good starting topology: a stem of 3x3 convolutions, stages that double filters " +
		"while halving resolution, batch norm after every convolution, and a single dense head. " +
		"Add skip connections once depth exceeds ~10 layers to keep gradients healthy.",
	TopicTroubleshooting: "If the search looks stuck, check three things: the experiment status " +
		"(a 'failed' run stops emitting progress), NaN losses from too-aggressive learning rates " +
		"in sampled candidates, and whether the evaluation budget was exhausted early.",
	TopicDataset: "Dataset choice drives the accuracy baseline: CIFAR-10 candidates start near " +
		"85%, CIFAR-100 near 60%, ImageNet near 70%. For custom datasets, make sure class balance " +
		"and input resolution match what the search space assumes.",
	TopicGeneral: "Hello! I'm the NAS assistant. I can evaluate candidate architectures, suggest " +
		"optimizations, compare models, and explain search strategies. Ask me about your " +
		"experiment or paste an architecture description to get started.",
}

// RespondToPrompt classifies the prompt and returns the bucket's canned
// response. Every call is independent; nothing is learned or retained.
func RespondToPrompt(prompt string) (Topic, string) {
	topic := ClassifyPrompt(prompt)
	return topic, topicResponses[topic]
}
