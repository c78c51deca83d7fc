// Package composer assembles the prompt sent to the completion gateway from
// the owner profile, the detected intent, and recent conversation history.
package composer

import (
	"fmt"
	"strings"

	"github.com/eshfaq-ux/foliochat/internal/intent"
	"github.com/eshfaq-ux/foliochat/internal/profile"
)

// maxHistoryTurns bounds how much conversation history is injected into the
// prompt. Older turns are silently dropped.
const maxHistoryTurns = 8

// Turn is a single conversation message supplied by the caller.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// guidance holds an intent-specific steering clause appended to the system
// framing. Exhaustive over the intent set; defaultGuidance covers anything
// that somehow falls outside it.
var guidance = map[intent.Intent]string{
	intent.AIExpertise:           "Focus on AI/ML skills, LLM integrations, and automation projects. Mention concrete technologies and outcomes.",
	intent.Availability:          "Confirm availability for new work and point the visitor to direct contact channels.",
	intent.TechnicalArchitecture: "Discuss system design choices, the technology stack, and scalability considerations from real projects.",
	intent.Projects:              "Describe featured projects with their impact, technologies, and links to code or demos.",
	intent.Skills:                "Summarize technical skills by category and tie them to practical experience.",
	intent.Experience:            "Walk through professional experience, highlighting achievements and responsibilities.",
	intent.Contact:               "Provide the contact channels clearly and invite the visitor to get in touch.",
	intent.Recruitment:           "Answer as to a recruiter: cover experience, availability, and how to proceed with a conversation.",
	intent.Greeting:              "Give a brief friendly welcome and offer the main topics the visitor can ask about.",
	intent.Pricing:               "Explain that pricing depends on scope and suggest discussing specifics over email.",
	intent.Education:             "Cover degrees and certifications and how they support the professional work.",
	intent.Teamwork:              "Describe collaboration style, communication habits, and experience working with teams.",
	intent.General:               "Answer helpfully using the profile, and suggest related topics the visitor might ask about.",
}

const defaultGuidance = "Answer helpfully using the profile information provided."

// Compose builds the full prompt for one completion request: system framing
// with the rendered profile, intent guidance, the last turns of history, and
// formatting directives. Pure and deterministic for identical inputs.
func Compose(in intent.Intent, history []Turn, p *profile.Profile) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are the portfolio assistant for %s. Answer visitor questions about them in third person, using only the profile below.\n\n", p.Personal.Name)
	sb.WriteString(profile.Render(p))

	g, ok := guidance[in]
	if !ok {
		g = defaultGuidance
	}
	fmt.Fprintf(&sb, "\nGuidance: %s\n", g)

	if turns := Truncate(history); len(turns) > 0 {
		sb.WriteString("\nConversation so far:\n")
		for _, t := range turns {
			label := "User"
			if t.Role == RoleAssistant {
				label = "Assistant"
			}
			fmt.Fprintf(&sb, "%s: %s\n", label, t.Content)
		}
	}

	sb.WriteString("\nRespond concisely in short paragraphs or bullet points. Avoid heavy markup. Stay factual to the profile; if something is not covered, say so and offer the contact email.")

	return sb.String()
}

// Truncate returns the most recent maxHistoryTurns turns in original order.
func Truncate(history []Turn) []Turn {
	if len(history) <= maxHistoryTurns {
		return history
	}
	return history[len(history)-maxHistoryTurns:]
}

// LastUserMessage returns the content of the most recent user turn, or ""
// when the history holds none.
func LastUserMessage(history []Turn) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == RoleUser {
			return history[i].Content
		}
	}
	return ""
}
