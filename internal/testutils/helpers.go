package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupDialogDir writes a dialog graph and a prompt template into a temporary directory.
// It returns their paths and fails the test immediately on error.
func SetupDialogDir(t *testing.T, graph, template string) (graphPath, templatePath string) {
	t.Helper()

	dir := t.TempDir()
	graphPath = filepath.Join(dir, "dialog.yaml")
	templatePath = filepath.Join(dir, "prompt_decision_template.yaml")

	require.NoError(t, os.WriteFile(graphPath, []byte(graph), 0o644), "Failed to write dialog graph")
	require.NoError(t, os.WriteFile(templatePath, []byte(template), 0o644), "Failed to write prompt template")
	return graphPath, templatePath
}

// CompletionServer is a fake of the text-completions endpoint.
type CompletionServer struct {
	*httptest.Server
	calls atomic.Int32
}

// Calls returns the number of completion requests served.
func (s *CompletionServer) Calls() int {
	return int(s.calls.Load())
}

// NewCompletionServer starts a fake completions API. answer receives the rendered
// prompt and returns the text of the single candidate. The server is closed with the test.
func NewCompletionServer(t *testing.T, answer func(prompt string) string) *CompletionServer {
	t.Helper()

	s := &CompletionServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)
		var req struct {
			Prompt string `json:"prompt"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "cmpl-test",
			"choices": []map[string]any{{"text": "\n" + answer(req.Prompt) + "\n", "index": 0}},
		})
	}))
	t.Cleanup(s.Server.Close)
	return s
}
