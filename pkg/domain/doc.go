/*
Package domain contains the core domain models of the Sortium dialog runner.

It defines the dialog graph entities and the conversation cursor. This package is
kept pure and free of external dependencies like I/O or persistence.

# Key Entities

  - Node: One dialog state with display text and ordered Options.
  - Option: A labeled choice mapped to a destination node id or the "exit" sentinel.
  - State: The conversation cursor (current node id, status, visited path).
  - LifecycleHooks: Callbacks used by logging and metrics.
*/
package domain
