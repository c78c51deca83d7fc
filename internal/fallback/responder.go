// Package fallback produces deterministic canned answers used whenever the
// completion gateway cannot deliver usable text. Every template interpolates
// live profile fields so canned answers never go stale relative to the
// profile document.
package fallback

import (
	"fmt"
	"strings"

	"github.com/eshfaq-ux/foliochat/internal/intent"
	"github.com/eshfaq-ux/foliochat/internal/profile"
)

// Respond returns the canned answer for the given intent. Total function:
// it never fails and always returns non-empty text, including for values
// outside the closed intent set (those get the greeting-shaped default).
func Respond(in intent.Intent, p *profile.Profile) string {
	if fn, ok := templates[in]; ok {
		return fn(p)
	}
	return greetingTemplate(p)
}

var templates = map[intent.Intent]func(*profile.Profile) string{
	intent.AIExpertise:           aiExpertiseTemplate,
	intent.Availability:          availabilityTemplate,
	intent.TechnicalArchitecture: architectureTemplate,
	intent.Projects:              projectsTemplate,
	intent.Skills:                skillsTemplate,
	intent.Experience:            experienceTemplate,
	intent.Contact:               contactTemplate,
	intent.Recruitment:           recruitmentTemplate,
	intent.Greeting:              greetingTemplate,
	intent.Pricing:               pricingTemplate,
	intent.Education:             educationTemplate,
	intent.Teamwork:              teamworkTemplate,
	intent.General:               greetingTemplate,
}

func aiExpertiseTemplate(p *profile.Profile) string {
	return fmt.Sprintf("%s works hands-on with AI/ML: %s. These show up across projects like workflow automation and chatbot systems — ask about a specific project for details.",
		p.Personal.Name, strings.Join(p.Skills.AIML, ", "))
}

func availabilityTemplate(p *profile.Profile) string {
	return fmt.Sprintf("%s is currently available for new projects and opportunities. The fastest way to get a response is email: %s.",
		p.Personal.Name, p.Personal.Email)
}

func architectureTemplate(p *profile.Profile) string {
	var techs []string
	seen := map[string]bool{}
	for _, proj := range p.Projects {
		for _, t := range proj.Tech {
			if !seen[t] {
				seen[t] = true
				techs = append(techs, t)
			}
		}
	}
	return fmt.Sprintf("%s designs full-stack systems end to end, typically on %s. Recent work includes %s — happy to walk through design decisions on a call.",
		p.Personal.Name, strings.Join(techs, ", "), firstProjectTitle(p))
}

func projectsTemplate(p *profile.Profile) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Featured projects by %s:\n", p.Personal.Name)
	for _, proj := range p.Projects {
		if !proj.Featured {
			continue
		}
		fmt.Fprintf(&sb, "• %s — %s", proj.Title, proj.Description)
		if proj.Impact != "" {
			fmt.Fprintf(&sb, " (%s)", proj.Impact)
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func skillsTemplate(p *profile.Profile) string {
	return fmt.Sprintf("%s is a %s with expertise in %s, AI/ML technologies including %s, and tooling such as %s and %s.",
		p.Personal.Name, p.Personal.Title,
		strings.Join(p.Skills.Programming, ", "),
		strings.Join(p.Skills.AIML, ", "),
		strings.Join(p.Skills.Tools, ", "),
		strings.Join(p.Skills.Automation, ", "))
}

func experienceTemplate(p *profile.Profile) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s's experience:\n", p.Personal.Name)
	for _, exp := range p.Experience {
		fmt.Fprintf(&sb, "• %s at %s (%s) — %s\n", exp.Title, exp.Company, exp.Duration, exp.Description)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func contactTemplate(p *profile.Profile) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You can reach %s at:\n", p.Personal.Name)
	fmt.Fprintf(&sb, "📧 Email: %s\n", p.Personal.Email)
	if p.Personal.Phone != "" {
		fmt.Fprintf(&sb, "📱 Phone: %s\n", p.Personal.Phone)
	}
	if p.Personal.LinkedIn != "" {
		fmt.Fprintf(&sb, "💼 LinkedIn: %s\n", p.Personal.LinkedIn)
	}
	if p.Personal.GitHub != "" {
		fmt.Fprintf(&sb, "🐙 GitHub: %s\n", p.Personal.GitHub)
	}
	if p.Personal.Telegram != "" {
		fmt.Fprintf(&sb, "✈️ Telegram: %s\n", p.Personal.Telegram)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func recruitmentTemplate(p *profile.Profile) string {
	return fmt.Sprintf("%s is open to interesting roles and projects. For recruitment inquiries, email %s — a resume and references are available on request.",
		p.Personal.Name, p.Personal.Email)
}

func greetingTemplate(p *profile.Profile) string {
	return fmt.Sprintf("Hi! I'm %s's portfolio assistant. I can help you learn about:\n\n• 💻 Technical Skills & Expertise\n• 🚀 Featured Projects & Demos\n• 💼 Professional Experience\n• 📧 Contact Information\n• 📅 Availability for Projects\n\nWhat would you like to know?",
		p.Personal.Name)
}

func pricingTemplate(p *profile.Profile) string {
	return fmt.Sprintf("Pricing depends on scope and timeline — %s works both hourly and fixed-price. Email %s with a short project description for a quote.",
		p.Personal.Name, p.Personal.Email)
}

func educationTemplate(p *profile.Profile) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s's education and certifications:\n", p.Personal.Name)
	for _, c := range p.Certifications {
		fmt.Fprintf(&sb, "• %s — %s (%s)", c.Title, c.Issuer, c.Date)
		if c.Description != "" {
			fmt.Fprintf(&sb, ", %s", c.Description)
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func teamworkTemplate(p *profile.Profile) string {
	return fmt.Sprintf("%s has worked with distributed client teams throughout %s of freelance delivery — clear written communication, async-friendly, comfortable owning features end to end.",
		p.Personal.Name, firstDuration(p))
}

func firstProjectTitle(p *profile.Profile) string {
	if len(p.Projects) > 0 {
		return p.Projects[0].Title
	}
	return "several client systems"
}

func firstDuration(p *profile.Profile) string {
	if len(p.Experience) > 0 {
		return p.Experience[0].Duration
	}
	return "years"
}
