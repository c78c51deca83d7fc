// Package resume renders the owner profile as a Markdown resume and
// parameterized cover letters. Output is plain text; converting it to PDF
// or DOCX is left to external tooling.
package resume

import (
	"fmt"
	"strings"
	"time"

	"github.com/eshfaq-ux/foliochat/internal/profile"
)

// Markdown renders a complete resume for the profile.
func Markdown(p *profile.Profile) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n%s — %s\n\n", p.Personal.Name, p.Personal.Title, p.Personal.Location)
	fmt.Fprintf(&sb, "%s | %s | %s | %s\n\n", p.Personal.Email, p.Personal.Phone, p.Personal.LinkedIn, p.Personal.GitHub)

	sb.WriteString("## Professional Summary\n\n")
	sb.WriteString(p.About.Description)
	sb.WriteString("\n\n")

	sb.WriteString("## Core Competencies\n\n")
	writeCompetency(&sb, "AI & Machine Learning", p.Skills.AIML)
	writeCompetency(&sb, "Programming & Frameworks", p.Skills.Programming)
	writeCompetency(&sb, "Tools & Technologies", p.Skills.Tools)
	writeCompetency(&sb, "Automation", p.Skills.Automation)
	sb.WriteString("\n")

	if len(p.Experience) > 0 {
		sb.WriteString("## Experience\n\n")
		for _, exp := range p.Experience {
			fmt.Fprintf(&sb, "### %s, %s\n\n%s", exp.Title, exp.Company, exp.Duration)
			if exp.Location != "" {
				fmt.Fprintf(&sb, " · %s", exp.Location)
			}
			fmt.Fprintf(&sb, "\n\n%s\n\n", exp.Description)
			for _, a := range exp.Achievements {
				fmt.Fprintf(&sb, "- %s\n", a)
			}
			if len(exp.Achievements) > 0 {
				sb.WriteString("\n")
			}
		}
	}

	if len(p.Projects) > 0 {
		sb.WriteString("## Projects\n\n")
		for _, proj := range p.Projects {
			fmt.Fprintf(&sb, "### %s\n\n%s", proj.Title, proj.Description)
			if proj.Impact != "" {
				fmt.Fprintf(&sb, " **%s.**", proj.Impact)
			}
			sb.WriteString("\n\n")
			if len(proj.Tech) > 0 {
				fmt.Fprintf(&sb, "*%s*\n\n", strings.Join(proj.Tech, " · "))
			}
		}
	}

	if len(p.Certifications) > 0 {
		sb.WriteString("## Education & Certifications\n\n")
		for _, c := range p.Certifications {
			fmt.Fprintf(&sb, "- **%s**, %s (%s) — %s\n", c.Title, c.Issuer, c.Date, c.Description)
		}
	}

	return sb.String()
}

// CoverLetterParams parameterize a cover letter for a specific application.
type CoverLetterParams struct {
	RecipientName string // defaults to "Hiring Manager"
	CompanyName   string
	Position      string
	Date          time.Time // defaults to today
}

// CoverLetter renders a cover letter interpolating profile facts into a
// fixed opening/body/closing structure.
func CoverLetter(p *profile.Profile, params CoverLetterParams) string {
	recipient := params.RecipientName
	if recipient == "" {
		recipient = "Hiring Manager"
	}
	position := params.Position
	if position == "" {
		position = p.Personal.Title
	}
	date := params.Date
	if date.IsZero() {
		date = time.Now()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n%s | %s | %s\n\n", p.Personal.Name, p.Personal.Email, p.Personal.Phone, p.Personal.Location)
	fmt.Fprintf(&sb, "%s\n\n", date.Format("January 2, 2006"))
	fmt.Fprintf(&sb, "%s\n", recipient)
	if params.CompanyName != "" {
		fmt.Fprintf(&sb, "%s\n", params.CompanyName)
	}
	fmt.Fprintf(&sb, "\nRe: Application for %s\n\n", position)
	fmt.Fprintf(&sb, "Dear %s,\n\n", recipient)

	fmt.Fprintf(&sb, "I am writing to express my interest in the %s position", position)
	if params.CompanyName != "" {
		fmt.Fprintf(&sb, " at %s", params.CompanyName)
	}
	fmt.Fprintf(&sb, ". %s\n\n", p.About.Description)

	if len(p.Experience) > 0 {
		exp := p.Experience[0]
		fmt.Fprintf(&sb, "Most recently as %s (%s), %s", exp.Title, exp.Duration, lowerFirst(exp.Description))
		if len(exp.Achievements) > 0 {
			fmt.Fprintf(&sb, " Highlights include: %s.", strings.Join(exp.Achievements, "; "))
		}
		sb.WriteString("\n\n")
	}

	fmt.Fprintf(&sb, "My core toolkit spans %s alongside AI/ML work with %s. I would welcome the chance to discuss how this experience applies to your needs.\n\n",
		strings.Join(p.Skills.Programming, ", "), strings.Join(p.Skills.AIML, ", "))

	fmt.Fprintf(&sb, "Sincerely,\n\n%s\n", p.Personal.Name)
	return sb.String()
}

func writeCompetency(sb *strings.Builder, label string, skills []string) {
	if len(skills) == 0 {
		return
	}
	fmt.Fprintf(sb, "- **%s:** %s\n", label, strings.Join(skills, ", "))
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
