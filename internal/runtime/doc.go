/*
Package runtime implements the dialog-resolution engine.

Each turn resolves the current node, renders the decision prompt, asks the
classifier which option label the user's free-form input corresponds to and
maps the answer onto an edge:

  - an exact label match on an "exit" option terminates the conversation;
  - any other exact match moves the cursor to the option's next_id;
  - anything else is a non-match and the same node is presented again.

Missing nodes and classifier failures are fatal for the run.
*/
package runtime
