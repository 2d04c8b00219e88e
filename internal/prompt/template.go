package prompt

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Placeholder tokens substituted on every render.
const (
	TokenDecisionPrompt = "{decision_prompt}"
	TokenOptionList     = "{option_list}"
	TokenUserResponse   = "{user_response}"
)

// ErrMissingPlaceholder is returned when a template lacks one of the required tokens.
var ErrMissingPlaceholder = errors.New("template missing placeholder")

// Template is a decision prompt template. It is immutable once parsed.
type Template struct {
	text string
}

// Load reads a template from path.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt template: %w", err)
	}
	t, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse validates that text carries every placeholder so Render never emits
// a partially filled prompt.
func Parse(text string) (*Template, error) {
	var missing []string
	for _, tok := range []string{TokenDecisionPrompt, TokenOptionList, TokenUserResponse} {
		if !strings.Contains(text, tok) {
			missing = append(missing, tok)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingPlaceholder, strings.Join(missing, ", "))
	}
	return &Template{text: text}, nil
}

// Render substitutes the three values in a single pass. Values are inserted
// verbatim and never re-expanded, even if they contain placeholder tokens.
func (t *Template) Render(decisionPrompt, optionList, userResponse string) string {
	r := strings.NewReplacer(
		TokenDecisionPrompt, decisionPrompt,
		TokenOptionList, optionList,
		TokenUserResponse, userResponse,
	)
	return r.Replace(t.text)
}

// String returns the raw template text.
func (t *Template) String() string {
	return t.text
}

// FormatOptions serializes option labels as a YAML sequence, preserving order.
func FormatOptions(labels []string) (string, error) {
	if labels == nil {
		labels = []string{}
	}
	out, err := yaml.Marshal(labels)
	if err != nil {
		return "", fmt.Errorf("failed to serialize option list: %w", err)
	}
	return string(out), nil
}
