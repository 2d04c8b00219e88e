package cli

import (
	"io"
	"os"

	"github.com/aretw0/sortium/internal/config"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	Config *config.Config
	In     io.Reader
	Out    io.Writer
	// Quiet suppresses the banner and system messages.
	Quiet bool
}

func (o *RunOptions) streams() (io.Reader, io.Writer) {
	in, out := o.In, o.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return in, out
}
