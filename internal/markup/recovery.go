package markup

// RecoveryStrategy is the parser's course of action after a fault.
type RecoveryStrategy uint8

const (
	// SkipElement drops the offending element, records a warning and
	// continues parsing after it.
	SkipElement RecoveryStrategy = iota + 1
	// FallbackToPlainText replaces the offending element with a plain
	// TextBlock holding whatever text was already extracted, records a
	// warning and continues.
	FallbackToPlainText
	// UseDefaultValue advances past the fault with no node and no warning.
	UseDefaultValue
	// Abort re-raises the fault to the Parse caller; parsing stops.
	Abort
)

// RecoveryContext carries what the parser knows at the point of a fault.
type RecoveryContext struct {
	// Element is the offending tag name, when known.
	Element string
	// Content is the text already extracted from the offending element,
	// available to a FallbackToPlainText strategy.
	Content string
	// Pos is the byte offset of the fault in the source.
	Pos int
}

// RecoveryHandler decides how the parser reacts to a fault. Handlers must be
// stateless so a single instance can be shared across concurrent Parse calls.
type RecoveryHandler interface {
	Handle(err error, ctx RecoveryContext) RecoveryStrategy
}

// ErrorLogger receives warnings and errors as side effects of parsing.
// Implementations are fire-and-forget and must never panic; they are invoked
// on whatever goroutine runs the Parse call.
type ErrorLogger interface {
	LogWarning(w Warning)
	LogError(err error, ctx map[string]string)
}

type nopLogger struct{}

func (nopLogger) LogWarning(Warning)                {}
func (nopLogger) LogError(error, map[string]string) {}

// LenientRecovery is the default handler: it degrades structure but never
// aborts, so one corrupt note cannot take the application down. Lexical
// faults fall back to plain text; unknown and incomplete elements are
// skipped unless partial text was already extracted.
type LenientRecovery struct{}

func (LenientRecovery) Handle(err error, ctx RecoveryContext) RecoveryStrategy {
	switch e := err.(type) {
	case *TokenizeError:
		return FallbackToPlainText
	case *ParseError:
		switch e.Kind {
		case ErrUnmatchedTag, ErrUnexpectedEOF:
			if ctx.Content != "" {
				return FallbackToPlainText
			}
		}
	}
	return SkipElement
}

// StrictRecovery aborts on every fault, making Parse propagate the raw
// error. Intended for tooling that validates markup rather than rendering
// it best-effort.
type StrictRecovery struct{}

func (StrictRecovery) Handle(error, RecoveryContext) RecoveryStrategy {
	return Abort
}
