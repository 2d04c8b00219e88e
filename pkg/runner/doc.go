/*
Package runner implements the interactive console loop for a Sortium dialog.

It is the bridge between the engine and the terminal: each iteration renders the current
node, reads one line of free-form input, and drives one engine turn. Presentation is
delegated to an IOHandler so the loop can be tested over plain buffers.

# Usage

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
		runner.WithLogger(logger),
	)

	if _, err := r.Run(ctx, engine, nil); err != nil {
		log.Fatal(err)
	}
*/
package runner
