package llm

// Model aliases keep the config surface stable while provider model IDs
// churn. A session makes one generation call per trainee turn, so the
// default aliases point at fast models; commentary quality matters less
// than turn latency during an interview.
var (
	anthropicModels = map[string]string{
		"claude-sonnet": "claude-sonnet-4-20250514",
		"claude-haiku":  "claude-haiku-4-5-20251001",
	}

	geminiModels = map[string]string{
		"gemini-flash": "gemini-2.0-flash",
		"gemini-pro":   "gemini-2.0-pro",
	}
)

// resolveModel expands an alias to the provider's model ID. Names outside
// the alias table pass through unchanged so exact model IDs keep working.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
