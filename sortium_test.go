package sortium_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/sortium"
	"github.com/aretw0/sortium/internal/prompt"
	"github.com/aretw0/sortium/internal/testutils"
	"github.com/aretw0/sortium/pkg/adapters/memory"
	"github.com/aretw0/sortium/pkg/adapters/openai"
	"github.com/aretw0/sortium/pkg/domain"
	"github.com/aretw0/sortium/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const template = "Q: {decision_prompt}\n{option_list}\nA: {user_response}"

func fixed(answer string) ports.ClassifierFunc {
	return func(ctx context.Context, prompt string) (string, error) {
		return answer, nil
	}
}

func TestNew_FromFiles(t *testing.T) {
	graphPath, templatePath := testutils.SetupDialogDir(t, `- id: start
  text: Continue?
  options:
    - option: "Yes"
      next_id: done
    - option: "No"
      next_id: exit
- id: done
  text: Done.
`, template)

	eng, err := sortium.New(graphPath, templatePath, sortium.WithClassifier(fixed("Yes")))
	require.NoError(t, err)

	ctx := context.Background()
	state := eng.Start(ctx)
	node, err := eng.Render(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, "Continue?", node.Text)

	res, err := eng.Navigate(ctx, state, "sure")
	require.NoError(t, err)
	assert.Equal(t, sortium.OutcomeAdvanced, res.Outcome)
	assert.Equal(t, "done", res.State.CurrentNodeID)
	assert.Equal(t, "start", state.CurrentNodeID, "input state is never mutated")

	nodes, err := eng.Inspect()
	require.NoError(t, err)
	assert.Len(t, nodes, 2)
}

func TestNew_LoadErrors(t *testing.T) {
	graphPath, templatePath := testutils.SetupDialogDir(t, "- id: start\n  text: Hi\n", template)
	dir := t.TempDir()

	_, err := sortium.New(filepath.Join(dir, "missing.yaml"), templatePath, sortium.WithClassifier(fixed("")))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = sortium.New(graphPath, filepath.Join(dir, "missing.yaml"), sortium.WithClassifier(fixed("")))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = sortium.New(graphPath, "", sortium.WithClassifier(fixed("")), sortium.WithTemplate("no placeholders"))
	assert.ErrorIs(t, err, prompt.ErrMissingPlaceholder)
}

func TestNew_DefaultClassifierNeedsAPIKey(t *testing.T) {
	t.Setenv(openai.EnvAPIKey, "")
	loader, err := memory.NewFromNodes(domain.Node{ID: "start", Text: "Hi"})
	require.NoError(t, err)

	_, err = sortium.New("", "", sortium.WithLoader(loader), sortium.WithTemplate(template))
	assert.ErrorIs(t, err, openai.ErrMissingAPIKey)
}

func TestNew_WithCache(t *testing.T) {
	loader, err := memory.NewFromNodes(domain.Node{
		ID:      "start",
		Text:    "Leave?",
		Options: []domain.Option{{Label: "Leave", NextID: domain.ExitNodeID}},
	})
	require.NoError(t, err)

	calls := 0
	classifier := ports.ClassifierFunc(func(ctx context.Context, prompt string) (string, error) {
		calls++
		return "Stay", nil
	})
	cache := memory.NewCache()

	eng, err := sortium.New("", "",
		sortium.WithLoader(loader),
		sortium.WithTemplate(template),
		sortium.WithClassifier(classifier),
		sortium.WithCache(cache),
	)
	require.NoError(t, err)

	ctx := context.Background()
	state := eng.Start(ctx)
	for i := 0; i < 3; i++ {
		res, err := eng.Navigate(ctx, state, "maybe")
		require.NoError(t, err)
		assert.Equal(t, sortium.OutcomeNoMatch, res.Outcome)
	}
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, cache.Len())
}

func TestNew_WithEntryNodeAndHooks(t *testing.T) {
	loader, err := memory.NewFromNodes(
		domain.Node{ID: "start", Text: "Start"},
		domain.Node{ID: "lobby", Text: "Lobby", Options: []domain.Option{{Label: "Bye", NextID: domain.ExitNodeID}}},
	)
	require.NoError(t, err)

	var entered []string
	var outcomes []string
	eng, err := sortium.New("", "",
		sortium.WithLoader(loader),
		sortium.WithTemplate(template),
		sortium.WithClassifier(fixed("Bye")),
		sortium.WithEntryNode("lobby"),
		sortium.WithLifecycleHooks(domain.LifecycleHooks{
			OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) { entered = append(entered, e.NodeID) },
			OnTurn:      func(ctx context.Context, e *domain.TurnEvent) { outcomes = append(outcomes, e.Outcome) },
		}),
	)
	require.NoError(t, err)

	ctx := context.Background()
	state := eng.Start(ctx)
	_, err = eng.Render(ctx, state)
	require.NoError(t, err)
	res, err := eng.Navigate(ctx, state, "goodbye")
	require.NoError(t, err)

	assert.True(t, res.State.Terminated())
	assert.Equal(t, []string{"lobby"}, entered)
	assert.Equal(t, []string{string(sortium.OutcomeExit)}, outcomes)
	assert.Same(t, loader, eng.Loader())
}

func TestNew_DefaultClassifierFromEnv(t *testing.T) {
	srv := testutils.NewCompletionServer(t, func(prompt string) string { return "No" })
	t.Setenv(openai.EnvAPIKey, "sk-test")
	t.Setenv(openai.EnvBaseURL, srv.URL)

	graphPath, templatePath := testutils.SetupDialogDir(t, `- id: start
  text: Continue?
  options:
    - option: "Yes"
      next_id: start
    - option: "No"
      next_id: exit
`, template)

	eng, err := sortium.New(graphPath, templatePath)
	require.NoError(t, err)

	ctx := context.Background()
	res, err := eng.Navigate(ctx, eng.Start(ctx), "nope")
	require.NoError(t, err)
	assert.Equal(t, sortium.OutcomeExit, res.Outcome)
	assert.Equal(t, "No", res.Choice)
	assert.Equal(t, 1, srv.Calls())
}
