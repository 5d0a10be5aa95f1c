package nasai

import (
	"strings"
	"testing"
)

func TestClassifyPromptBuckets(t *testing.T) {
	cases := []struct {
		prompt string
		want   Topic
	}{
		{"help me optimize my model", TopicOptimization},
		{"how does resnet compare vs vgg", TopicComparison},
		{"why is my accuracy stuck at 80%", TopicPerformance},
		{"will this fit on a mobile gpu", TopicHardware},
		{"should I use bayesian or evolutionary search", TopicSearchStrategy},
		{"where should I put skip connections", TopicDesign},
		{"the run crashed and is stuck", TopicTroubleshooting},
		{"is cifar100 harder than cifar10", TopicDataset},
		{"hello", TopicGeneral},
		{"", TopicGeneral},
	}
	for _, tc := range cases {
		if got := ClassifyPrompt(tc.prompt); got != tc.want {
			t.Errorf("ClassifyPrompt(%q) = %q, want %q", tc.prompt, got, tc.want)
		}
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	// "optimize my layer design" hits both optimization and design rules;
	// optimization is earlier in the list.
	if got := ClassifyPrompt("optimize my layer design"); got != TopicOptimization {
		t.Fatalf("expected first rule to win, got %q", got)
	}
}

func TestRespondToPromptGreeting(t *testing.T) {
	topic, content := RespondToPrompt("hello")
	if topic != TopicGeneral {
		t.Fatalf("expected general topic, got %q", topic)
	}
	if !strings.Contains(content, "Hello") {
		t.Fatalf("greeting response missing greeting text: %q", content)
	}
}

func TestEveryTopicHasResponse(t *testing.T) {
	topics := []Topic{
		TopicOptimization, TopicComparison, TopicPerformance, TopicHardware,
		TopicSearchStrategy, TopicDesign, TopicTroubleshooting, TopicDataset,
		TopicGeneral,
	}
	for _, topic := range topics {
		if topicResponses[topic] == "" {
			t.Errorf("topic %q has no response template", topic)
		}
	}
}
