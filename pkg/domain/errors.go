package domain

import "errors"

// ErrNodeNotFound is returned when the cursor points at an id that is not in the graph.
var ErrNodeNotFound = errors.New("node not found")

// ErrNoAnswer is returned when the classifier response carries zero candidates.
var ErrNoAnswer = errors.New("classifier returned no answer")

// ErrConversationOver is returned when a turn is requested on a terminated state.
var ErrConversationOver = errors.New("conversation already terminated")
