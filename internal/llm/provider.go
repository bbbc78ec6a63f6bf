package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over the external language generation service.
// The interview core composes exactly one Generate call per trainee turn;
// everything else (patient persona, commentary) goes through the same door.
type Provider interface {
	// Generate sends a prompt to the LLM and returns its output.
	// When the request carries a Schema the provider uses its native
	// structured-output mechanism and the response Content is the
	// validated JSON. Without a Schema the Content is raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the generation service.
type Request struct {
	// System is the system prompt. For patient turns this is the persona
	// instruction built by the persona package.
	System string

	// Messages is the interview history in conversation order:
	// trainee turns as user messages, patient turns as assistant messages.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform to.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message is a single utterance in the conversation history.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "interview-analysis".
	Name string

	// Description guides the LLM on what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output. Validated JSON when a Schema was
	// requested, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is one of the normalized stop reasons below.
	StopReason string
}

// Normalized stop reasons across providers.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Text returns the response content as plain text. Providers differ on
// whether free-text output arrives raw or as a JSON-encoded string; both
// forms decode to the same utterance here.
func (r *Response) Text() string {
	var s string
	if err := json.Unmarshal(r.Content, &s); err == nil {
		return s
	}
	return string(r.Content)
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
