package domain

// Reserved node identifiers.
const (
	// EntryNodeID is the node every conversation starts on.
	EntryNodeID = "start"
	// ExitNodeID is the sentinel next_id that ends the conversation.
	// It never names a real node.
	ExitNodeID = "exit"
)

// Node is one state of the conversation: the text shown to the user and the
// ordered choices that lead away from it.
type Node struct {
	ID   string `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`

	// Options order is significant: it is the display order and the order
	// embedded in the classification prompt.
	Options []Option `json:"options" yaml:"options"`
}

// Option is a labeled choice on a node.
type Option struct {
	// Label is both the displayed text and the literal string the classifier
	// is expected to echo back.
	Label string `json:"option" yaml:"option"`

	// NextID is the destination node id, or ExitNodeID.
	// It is only checked when the option is actually taken.
	NextID string `json:"next_id" yaml:"next_id"`
}

// Labels returns the option labels in declared order.
func (n *Node) Labels() []string {
	labels := make([]string, 0, len(n.Options))
	for _, o := range n.Options {
		labels = append(labels, o.Label)
	}
	return labels
}

// Match returns the first option whose label equals choice exactly.
func (n *Node) Match(choice string) (Option, bool) {
	for _, o := range n.Options {
		if o.Label == choice {
			return o, true
		}
	}
	return Option{}, false
}

// IsExit reports whether taking the option ends the conversation.
func (o Option) IsExit() bool {
	return o.NextID == ExitNodeID
}

// DefaultAgentName prefixes every line the runner prints on behalf of the dialog.
const DefaultAgentName = "Sortium"
