package runtime

import (
	"fmt"
	"strings"

	"github.com/aretw0/sortium/internal/prompt"
	"github.com/aretw0/sortium/pkg/domain"
)

// renderPrompt builds the classification request for node and the user's raw input.
func (e *Engine) renderPrompt(node *domain.Node, input string) (string, error) {
	if e.template == nil {
		return "", fmt.Errorf("no prompt template configured")
	}
	optionList, err := prompt.FormatOptions(node.Labels())
	if err != nil {
		return "", err
	}
	return e.template.Render(node.Text, optionList, strings.TrimSpace(input)), nil
}
