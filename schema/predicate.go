package schema

import "context"

// Predicate decides whether a value is acceptable to a Custom schema.
//
// Implementations must be safe for concurrent use; a predicate attached to
// a shared schema may be invoked from many goroutines at once.
type Predicate interface {
	// Accept reports whether v is acceptable. It must not panic on any
	// input, including nil.
	Accept(v any) bool
}

// PredicateFunc adapts a plain function to the Predicate interface.
type PredicateFunc func(v any) bool

// Accept calls f(v).
func (f PredicateFunc) Accept(v any) bool { return f(v) }

// ContextPredicate is an optional upgrade of Predicate for implementations
// that observe a context during evaluation, such as expression predicates
// with cancellation support. Validation paths that carry a context call
// AcceptContext when a predicate implements it and fall back to Accept
// otherwise.
type ContextPredicate interface {
	Predicate

	// AcceptContext is Accept with a context. A canceled context makes the
	// predicate reject.
	AcceptContext(ctx context.Context, v any) bool
}

// SourcePredicate is an optional upgrade of Predicate for implementations
// backed by a textual expression. The document form of a Custom schema
// records the source so the predicate can be recompiled after a round trip;
// predicates without a source are dropped from the document form.
type SourcePredicate interface {
	Predicate

	// Source returns the expression text the predicate was compiled from.
	Source() string
}

// AcceptContext evaluates p against v, routing through AcceptContext when p
// implements ContextPredicate and through Accept otherwise. A nil predicate
// accepts everything.
func AcceptContext(ctx context.Context, p Predicate, v any) bool {
	if p == nil {
		return true
	}
	if cp, ok := p.(ContextPredicate); ok {
		return cp.AcceptContext(ctx, v)
	}
	return p.Accept(v)
}
