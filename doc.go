/*
Package sortium runs dialog trees whose branches are chosen by a text-completion model.

A dialog is a graph of nodes. Each node has a text and a list of options, and every option
names the next node (or "exit"). Instead of asking the user to type an exact option, Sortium
renders a prompt from a template, asks an intent classifier (by default the OpenAI completions
API) which option the free-form answer means, and follows the matching edge. An answer that
matches no option re-presents the same node.

# Usage

	eng, err := sortium.New("dialog.yaml", "prompt_decision_template.yaml")
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	state := eng.Start(ctx)
	for !state.Terminated() {
		node, err := eng.Render(ctx, state)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(node.Text)

		res, err := eng.Navigate(ctx, state, readLine())
		if err != nil {
			log.Fatal(err)
		}
		state = res.State
	}

For an interactive console loop see package runner.
*/
package sortium
