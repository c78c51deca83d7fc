package profile

import (
	"fmt"
	"strings"
)

// Render serializes the profile as labeled sections suitable for injection
// into a system prompt. Output is deterministic for a given profile.
func Render(p *Profile) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[Summary]\n%s is a %s based in %s. %s\n", p.Personal.Name, p.Personal.Title, p.Personal.Location, p.About.Description)

	sb.WriteString("\n[Skills]\n")
	writeSkillLine(&sb, "Programming", p.Skills.Programming)
	writeSkillLine(&sb, "AI/ML", p.Skills.AIML)
	writeSkillLine(&sb, "Tools", p.Skills.Tools)
	writeSkillLine(&sb, "Automation", p.Skills.Automation)

	if len(p.Projects) > 0 {
		sb.WriteString("\n[Projects]\n")
		for _, proj := range p.Projects {
			fmt.Fprintf(&sb, "- %s: %s", proj.Title, proj.Description)
			if len(proj.Tech) > 0 {
				fmt.Fprintf(&sb, " Technologies: %s.", strings.Join(proj.Tech, ", "))
			}
			if proj.Impact != "" {
				fmt.Fprintf(&sb, " Impact: %s.", proj.Impact)
			}
			if proj.GitHub != "" {
				fmt.Fprintf(&sb, " Code: %s.", proj.GitHub)
			}
			if proj.Demo != "" {
				fmt.Fprintf(&sb, " Demo: %s.", proj.Demo)
			}
			sb.WriteString("\n")
		}
	}

	if len(p.Experience) > 0 {
		sb.WriteString("\n[Experience]\n")
		for _, exp := range p.Experience {
			fmt.Fprintf(&sb, "- %s at %s (%s). %s\n", exp.Title, exp.Company, exp.Duration, exp.Description)
			for _, a := range exp.Achievements {
				fmt.Fprintf(&sb, "  * %s\n", a)
			}
		}
	}

	if len(p.Certifications) > 0 {
		sb.WriteString("\n[Certifications & Education]\n")
		for _, c := range p.Certifications {
			fmt.Fprintf(&sb, "- %s, %s (%s): %s\n", c.Title, c.Issuer, c.Date, c.Description)
		}
	}

	fmt.Fprintf(&sb, "\n[Contact]\nEmail: %s | Phone: %s | LinkedIn: %s | GitHub: %s", p.Personal.Email, p.Personal.Phone, p.Personal.LinkedIn, p.Personal.GitHub)
	if p.Personal.Telegram != "" {
		fmt.Fprintf(&sb, " | Telegram: %s", p.Personal.Telegram)
	}
	sb.WriteString("\n")

	return sb.String()
}

// Summary returns a one-line description of the owner.
func Summary(p *Profile) string {
	return fmt.Sprintf("%s — %s, %s", p.Personal.Name, p.Personal.Title, p.Personal.Location)
}

func writeSkillLine(sb *strings.Builder, label string, skills []string) {
	if len(skills) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s: %s\n", label, strings.Join(skills, ", "))
}
