/*
Package ports defines the driven ports (interfaces) for the Sortium engine.

These interfaces decouple the dialog engine from external implementations, allowing
it to run against different graph sources, classifiers and caches.

# Key Interfaces

  - GraphLoader: Resolves node ids to Node definitions (e.g., from YAML or Memory).
  - Classifier: Turns a rendered decision prompt into free text (e.g., OpenAI completions).
  - ClassificationCache: Optional memoization of classifier answers (Memory or Redis).
*/
package ports
