package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/sortium/pkg/domain"
)

// DefaultPrompt is written before every input read.
const DefaultPrompt = "> "

// TextHandler implements the standard text-based interface.
// Node and agent lines are written as "<Agent>: <text>", options as "- <label>".
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer
	Prefix   string
	Prompt   string

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithTextHandlerPrefix sets the speaker tag written before agent lines, e.g. a styled "Sortium:".
func WithTextHandlerPrefix(prefix string) TextHandlerOption {
	return func(h *TextHandler) {
		h.Prefix = prefix
	}
}

// WithTextHandlerPrompt overrides the input prompt. An empty prompt writes nothing.
func WithTextHandlerPrompt(prompt string) TextHandlerOption {
	return func(h *TextHandler) {
		h.Prompt = prompt
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
		Prefix: domain.DefaultAgentName + ":",
		Prompt: DefaultPrompt,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

// pump reads lines in the background so Input can honour context cancellation
// while a read is blocked on the terminal.
func (h *TextHandler) pump() {
	for {
		text, err := h.Reader.ReadString('\n')

		// A final line without newline is still an answer.
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}

		if err != nil {
			if err == io.EOF {
				close(h.inputChan)
				return
			}
			h.inputChan <- inputResult{err: err}
			// Backoff for persistent read failures to prevent CPU spikes.
			time.Sleep(50 * time.Millisecond)
		}
	}
}

// Output writes the node text followed by one line per option label.
func (h *TextHandler) Output(ctx context.Context, node *domain.Node) error {
	text := node.Text
	if h.Renderer != nil {
		if rendered, err := h.Renderer(text); err == nil {
			text = rendered
		}
	}
	if err := h.line(strings.TrimSpace(text)); err != nil {
		return err
	}
	for _, label := range node.Labels() {
		if _, err := fmt.Fprintf(h.Writer, "- %s\n", label); err != nil {
			return err
		}
	}
	return nil
}

// Say writes msg as an agent line.
func (h *TextHandler) Say(ctx context.Context, msg string) error {
	return h.line(msg)
}

func (h *TextHandler) line(text string) error {
	if h.Prefix == "" {
		_, err := fmt.Fprintln(h.Writer, text)
		return err
	}
	_, err := fmt.Fprintf(h.Writer, "%s %s\n", h.Prefix, text)
	return err
}

// Input prompts and waits for one sanitized line. Lines rejected by SanitizeInput
// are reported and the read is retried.
func (h *TextHandler) Input(ctx context.Context) (string, error) {
	h.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			if h.Prompt != "" {
				fmt.Fprint(h.Writer, h.Prompt)
			}
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}

			clean, err := SanitizeInput(strings.TrimSpace(res.text))
			if err != nil {
				fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}
