package runtime

import (
	"context"
	"time"

	"github.com/aretw0/sortium/pkg/domain"
)

func (e *Engine) emitNodeEnter(ctx context.Context, nodeID string) {
	if e.hooks.OnNodeEnter == nil {
		return
	}
	e.hooks.OnNodeEnter(ctx, &domain.NodeEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventNodeEnter},
		NodeID:    nodeID,
	})
}

func (e *Engine) emitClassify(ctx context.Context, nodeID, choice string, d time.Duration, err error) {
	if e.hooks.OnClassify == nil {
		return
	}
	e.hooks.OnClassify(ctx, &domain.ClassifyEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventClassify},
		NodeID:    nodeID,
		Choice:    choice,
		Duration:  d,
		Err:       err,
	})
}

func (e *Engine) emitTurn(ctx context.Context, fromID string, r *TurnResult) {
	if e.hooks.OnTurn == nil {
		return
	}
	e.hooks.OnTurn(ctx, &domain.TurnEvent{
		EventBase:  domain.EventBase{Timestamp: time.Now(), Type: domain.EventTurn},
		FromNodeID: fromID,
		ToNodeID:   r.State.CurrentNodeID,
		Outcome:    string(r.Outcome),
	})
}
