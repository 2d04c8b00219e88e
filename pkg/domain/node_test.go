package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestNode_Match(t *testing.T) {
	n := &Node{
		ID: "start",
		Options: []Option{
			{Label: "Buy", NextID: "catalog"},
			{Label: "Leave", NextID: ExitNodeID},
			{Label: "Buy", NextID: "elsewhere"},
		},
	}

	opt, ok := n.Match("Buy")
	assert.True(t, ok)
	assert.Equal(t, "catalog", opt.NextID, "first declared option wins")

	for _, choice := range []string{"buy", " Buy", "Buy.", ""} {
		_, ok := n.Match(choice)
		assert.False(t, ok, "choice %q must not match", choice)
	}

	assert.Equal(t, []string{"Buy", "Leave", "Buy"}, n.Labels())
}

func TestNode_ZeroOptions(t *testing.T) {
	n := &Node{ID: "dead-end"}
	assert.Empty(t, n.Labels())
	_, ok := n.Match("")
	assert.False(t, ok)
}

func TestOption_IsExit(t *testing.T) {
	assert.True(t, Option{Label: "Leave", NextID: "exit"}.IsExit())
	assert.False(t, Option{Label: "Stay", NextID: "start"}.IsExit())
}

func TestNode_YAMLKeys(t *testing.T) {
	var nodes []Node
	err := yaml.Unmarshal([]byte(`
- id: start
  text: Hi
  options:
    - option: Leave
      next_id: exit
`), &nodes)
	assert.NoError(t, err)
	assert.Equal(t, []Node{{
		ID:      "start",
		Text:    "Hi",
		Options: []Option{{Label: "Leave", NextID: ExitNodeID}},
	}}, nodes)
}

func TestState_CloneIsIndependent(t *testing.T) {
	s := NewState(EntryNodeID)
	c := s.Clone()
	c.CurrentNodeID = "other"
	c.History = append(c.History, "other")
	c.Status = StatusTerminated

	assert.Equal(t, EntryNodeID, s.CurrentNodeID)
	assert.Equal(t, []string{EntryNodeID}, s.History)
	assert.False(t, s.Terminated())
	assert.True(t, c.Terminated())

	var nilState *State
	assert.Nil(t, nilState.Clone())
}
