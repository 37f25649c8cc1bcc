// Package assist talks to the generation service on behalf of the screens.
//
// A Client makes exactly one provider call per request and never fails:
// service errors and empty replies are converted to fixed, request-specific
// text while the underlying error is kept in Result.Err and logged. Service
// composes the prompt builders, the Client and StripFences into the
// model.Assistant used by the view state holders.
package assist

// Kind identifies the type of request, which selects its fallback text.
type Kind int

const (
	KindScript Kind = iota
	KindSingleSimulation
	KindBatchSimulation
	KindChat
)

func (k Kind) String() string {
	switch k {
	case KindScript:
		return "script"
	case KindSingleSimulation:
		return "single simulation"
	case KindBatchSimulation:
		return "batch simulation"
	case KindChat:
		return "chat"
	default:
		return "unknown"
	}
}

const (
	scriptFallback = "# Error generating script. Please check your API key and try again."
	singleFallback = "{\n  \"error\": \"Failed to simulate response\"\n}"
	batchFallback  = "[\n  {\n    \"error\": \"Failed to simulate batch response\"\n  }\n]"
	chatFallback   = "Sorry, I encountered an error communicating with the API."
)

// Fallback returns the text displayed when a request of kind fails.
func Fallback(kind Kind) string {
	switch kind {
	case KindScript:
		return scriptFallback
	case KindSingleSimulation:
		return singleFallback
	case KindBatchSimulation:
		return batchFallback
	default:
		return chatFallback
	}
}

// EmptyPlaceholder returns the text displayed when the service answers with nothing.
func EmptyPlaceholder(kind Kind) string {
	switch kind {
	case KindScript:
		return "# No code generated."
	case KindSingleSimulation:
		return "{}"
	case KindBatchSimulation:
		return "[]"
	default:
		return "I couldn't generate a response."
	}
}
