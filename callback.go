package modesto

// Verdict tells the registrar whether to keep a deferred callback.
type Verdict uint8

const (
	KeepMe    Verdict = iota // run again next tick
	DiscardMe                // remove after this tick
)

// Action is the kind of change an Intent asks its target to make.
type Action uint8

const (
	ActionRelease  Action = iota // clear a pressed/highlighted state
	ActionActivate               // perform the widget's action (Index selects an entry)
	ActionClose                  // close the target
	ActionMove                   // move the target to Pos and show it as moving
	ActionDrop                   // end a move
)

var actionNames = [...]string{
	ActionRelease:  "Release",
	ActionActivate: "Activate",
	ActionClose:    "Close",
	ActionMove:     "Move",
	ActionDrop:     "Drop",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Action(?)"
}

// Intent is a message from a deferred callback to a widget, addressed by ID.
// Callbacks never hold widget pointers; the desktop delivers intents to the
// widget that currently owns the ID, if any.
type Intent struct {
	Target WidgetID
	Action Action
	Index  int
	Pos    Position
}

// Reaction is what a deferred callback returns each tick.
type Reaction struct {
	Verdict Verdict
	Intents []Intent
}

// Keep returns a Reaction that keeps the callback queued.
func Keep(intents ...Intent) Reaction {
	return Reaction{Verdict: KeepMe, Intents: intents}
}

// Discard returns a Reaction that removes the callback.
func Discard(intents ...Intent) Reaction {
	return Reaction{Verdict: DiscardMe, Intents: intents}
}

// DeferredFunc is evaluated once per tick with that tick's pointer position
// and event until it returns DiscardMe.
type DeferredFunc func(pos Position, kind MouseEventKind) Reaction

type deferredCallback struct {
	owner WidgetID
	fn    DeferredFunc
}

// CallbackRegistrar is the ordered queue of deferred callbacks.
type CallbackRegistrar struct {
	callbacks []deferredCallback
	discard   []int // reused index buffer
}

// Defer queues fn on behalf of owner. The callback is dropped without running
// once owner no longer resolves in the tree.
func (r *CallbackRegistrar) Defer(owner WidgetID, fn DeferredFunc) {
	if fn == nil {
		panic("modesto: cannot defer nil callback")
	}
	r.callbacks = append(r.callbacks, deferredCallback{owner: owner, fn: fn})
}

// Len returns the number of queued callbacks.
func (r *CallbackRegistrar) Len() int {
	return len(r.callbacks)
}

// Drain invokes every queued callback once, in registration order, and
// returns the intents they produced in the same order. Callbacks that return
// DiscardMe are removed afterwards, walking indices in reverse so removal
// does not shift pending ones. alive may be nil, in which case every owner is
// considered alive.
func (r *CallbackRegistrar) Drain(pos Position, kind MouseEventKind, alive func(WidgetID) bool) []Intent {
	var intents []Intent
	r.discard = r.discard[:0]
	n := len(r.callbacks) // callbacks deferred during the drain wait for the next tick
	for i := 0; i < n; i++ {
		cb := r.callbacks[i]
		if alive != nil && !alive(cb.owner) {
			if globalDebug {
				debugLogf("dropping callback of removed widget %d", cb.owner)
			}
			r.discard = append(r.discard, i)
			continue
		}
		res := cb.fn(pos, kind)
		intents = append(intents, res.Intents...)
		if res.Verdict == DiscardMe {
			r.discard = append(r.discard, i)
		}
	}
	for j := len(r.discard) - 1; j >= 0; j-- {
		r.removeAt(r.discard[j])
	}
	return intents
}

// DropOwners removes every callback owned by one of ids.
func (r *CallbackRegistrar) DropOwners(ids ...WidgetID) {
	if len(ids) == 0 {
		return
	}
	set := make(map[WidgetID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	kept := r.callbacks[:0]
	for _, cb := range r.callbacks {
		if _, gone := set[cb.owner]; !gone {
			kept = append(kept, cb)
		}
	}
	for i := len(kept); i < len(r.callbacks); i++ {
		r.callbacks[i] = deferredCallback{}
	}
	r.callbacks = kept
}

// removeAt deletes the callback at i, preserving order.
func (r *CallbackRegistrar) removeAt(i int) {
	copy(r.callbacks[i:], r.callbacks[i+1:])
	r.callbacks[len(r.callbacks)-1] = deferredCallback{}
	r.callbacks = r.callbacks[:len(r.callbacks)-1]
}
