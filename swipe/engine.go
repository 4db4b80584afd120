package swipe

import (
	"context"
	"log"
)

// Recorder persists a resolved decision. The interaction service satisfies
// this; tests use a stub.
type Recorder interface {
	Record(ctx context.Context, actorID, targetID, action string) error
}

// Engine binds a session to a viewer and a recorder. Once a card resolves,
// the decision is handed to the recorder before the session advances and
// before any further gesture input is accepted, so a rapid re-swipe cannot
// double-submit.
type Engine struct {
	ViewerID string
	Session  *Session
	Recorder Recorder
}

func NewEngine(viewerID string, session *Session, recorder Recorder) *Engine {
	return &Engine{ViewerID: viewerID, Session: session, Recorder: recorder}
}

// FinishDrag releases the current drag. An under-threshold release springs
// back and reports DecisionNone. A terminal decision is submitted and the
// session advances; a recorder failure is logged and returned as an advisory
// but the session still advances (the local state optimistically trusts the
// decision and divergence is reconciled on the next queue load).
func (e *Engine) FinishDrag(ctx context.Context) (Decision, error) {
	decision := e.Session.Release()
	if decision == DecisionNone {
		return DecisionNone, nil
	}
	return decision, e.submit(ctx, decision)
}

// PressAccept and PressReject drive the same terminal path as a gesture.
func (e *Engine) PressAccept(ctx context.Context) (Decision, error) {
	return e.press(ctx, DecisionAccept)
}

func (e *Engine) PressReject(ctx context.Context) (Decision, error) {
	return e.press(ctx, DecisionReject)
}

func (e *Engine) press(ctx context.Context, d Decision) (Decision, error) {
	if !e.Session.Press(d) {
		return DecisionNone, nil
	}
	return d, e.submit(ctx, d)
}

func (e *Engine) submit(ctx context.Context, d Decision) error {
	target, ok := e.Session.Current()
	if !ok {
		return nil
	}

	err := e.Recorder.Record(ctx, e.ViewerID, target.UserID, d.Action())
	if err != nil {
		log.Printf("❌ Failed to record decision %s -> %s: %v", e.ViewerID, target.UserID, err)
	}

	e.Session.Advance()
	return err
}
