package bot

import (
	"strings"

	"github.com/fwojciec/docbot"
)

// systemPrompt frames every completion. The crawled documentation is passed
// separately as context text; this only sets the register of the answer.
const systemPrompt = `You are a documentation expert and creative thinker. Your role is to help developers understand the documentation and explore what they can build with it. When answering questions:

1. Start with a brief, engaging introduction that shows you understand the developer's goal
2. Ground every claim in the provided documentation context; do not invent APIs
3. Include short code examples from the context when they illustrate the answer
4. Suggest concrete next steps or related sections worth reading
5. If the context does not cover the question, say so plainly instead of guessing

Remember: you're not just quoting documentation, you're helping developers think about what they can build with it.`

// BuildSystemPrompt returns the system prompt, narrowed to a subcategory's
// section when one was selected.
func BuildSystemPrompt(sub *docbot.Subcategory) string {
	if sub == nil {
		return systemPrompt
	}
	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\nFor this question, focus on the ")
	sb.WriteString(sub.Name)
	sb.WriteString(" section.")
	if len(sub.Subtopics) > 0 {
		sb.WriteString(" Topics covered there include:")
		for _, topic := range sub.Subtopics {
			sb.WriteString("\n- ")
			sb.WriteString(topic)
		}
	}
	return sb.String()
}
