package runner_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/sortium"
	"github.com/aretw0/sortium/pkg/adapters/memory"
	"github.com/aretw0/sortium/pkg/domain"
	"github.com/aretw0/sortium/pkg/ports"
	"github.com/stretchr/testify/require"
)

const testTemplate = "Question: {decision_prompt}\nOptions:\n{option_list}\nAnswer: {user_response}\nChoice:"

func shopNodes() []domain.Node {
	return []domain.Node{
		{
			ID:   "start",
			Text: "Welcome! What would you like to do?",
			Options: []domain.Option{
				{Label: "Buy", NextID: "buy"},
				{Label: "Leave", NextID: domain.ExitNodeID},
			},
		},
		{
			ID:   "buy",
			Text: "What do you want to buy?",
			Options: []domain.Option{
				{Label: "Apples", NextID: "thanks"},
				{Label: "Nothing", NextID: "start"},
			},
		},
		{
			ID:   "thanks",
			Text: "Enjoy your apples!",
			Options: []domain.Option{
				{Label: "Bye", NextID: domain.ExitNodeID},
			},
		},
	}
}

// answerClassifier maps the user response embedded in the prompt to a fixed answer.
// Unknown responses classify as the empty string, which matches no label.
func answerClassifier(answers map[string]string) ports.ClassifierFunc {
	return func(ctx context.Context, prompt string) (string, error) {
		_, after, _ := strings.Cut(prompt, "Answer: ")
		response, _, _ := strings.Cut(after, "\n")
		return answers[response], nil
	}
}

func newEngine(t *testing.T, nodes []domain.Node, c ports.Classifier) *sortium.Engine {
	t.Helper()
	loader, err := memory.NewFromNodes(nodes...)
	require.NoError(t, err)

	eng, err := sortium.New("", "",
		sortium.WithLoader(loader),
		sortium.WithClassifier(c),
		sortium.WithTemplate(testTemplate),
	)
	require.NoError(t, err)
	return eng
}
