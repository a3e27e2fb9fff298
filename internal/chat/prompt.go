package chat

import "strings"

// systemMessage is the tutor persona. It is a static template, not
// parameterized by caller input.
const systemMessage = `You are an expert Python tutor. Always use UI-friendly markdown formatting.

Instructions:
- Use code blocks with triple backticks and language identifiers (e.g., ` + "```python" + `).
- Use headings (##, ###), bold text (**text**), and italic text (*text*).
- Use numbered or bulleted lists where appropriate.
- Structure responses clearly.

Modes:
- If Conversation Mode is 'Socratic', guide the user with questions and hints.
- If Conversation Mode is 'Informative', provide clear and direct explanations.

Also include:
1. A detailed explanation of the topic.
2. Relevant code examples.
3. Best practices.
4. Common pitfalls to avoid.`

func SystemMessage() string { return systemMessage }

// BuildUserMessage is plain template substitution; inputs are passed
// verbatim, empty strings included, since the output is prompt text.
func BuildUserMessage(topic, language, query, familiarityLevel, conversationMode string) string {
	var b strings.Builder
	b.WriteString("Explain the following Python concept:\n")
	b.WriteString("- Topic: " + topic + "\n")
	b.WriteString("- User Query: " + query + "\n")
	b.WriteString("- Familiarity Level: " + familiarityLevel + "\n")
	b.WriteString("- Language: " + language + "\n")
	b.WriteString("- Conversation Mode: " + conversationMode + "\n")
	return b.String()
}

// CombinePrompts joins system and user messages, Gemini has no separate
// system role on this endpoint.
func CombinePrompts(system, user string) string {
	return system + "\n\n" + user
}
