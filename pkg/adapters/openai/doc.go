/*
Package openai classifies free-form user input through the OpenAI text-completions API.

The rendered decision prompt is sent as the sole input together with static
generation parameters; the first returned candidate, trimmed of surrounding
whitespace, is the classification result.

Failure classes are distinct sentinel errors:

  - ErrMissingAPIKey: no credential configured (returned by New).
  - ErrTransport: network failure or non-2xx status.
  - ErrMalformedResponse: the body does not decode into a completion.
  - domain.ErrNoAnswer: the response carries zero candidates.

A candidate that matches no option label is not an error here; the engine
treats it as a non-match.
*/
package openai
