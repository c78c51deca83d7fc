// Package knowledge provides keyword-scored search over entries derived
// from the owner profile. It backs the MCP search tool; the chat pipeline
// itself injects the full rendered profile instead.
package knowledge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/eshfaq-ux/foliochat/internal/profile"
)

// Entry is one searchable fact about the owner.
type Entry struct {
	ID       string
	Content  string
	Category string
	Keywords []string
}

// Result pairs an entry with its relevance score for a query.
type Result struct {
	Entry
	Score int
}

// Index holds the derived entries. Built once at startup from the read-only
// profile, so it needs no synchronization.
type Index struct {
	entries []Entry
}

// BuildIndex derives searchable entries from the profile: a personal
// summary, one entry per skill category, one per project, and the contact
// block.
func BuildIndex(p *profile.Profile) *Index {
	var entries []Entry

	entries = append(entries, Entry{
		ID:       "personal-info",
		Content:  fmt.Sprintf("%s is a %s based in %s. %s", p.Personal.Name, p.Personal.Title, p.Personal.Location, p.About.Description),
		Category: "personal",
		Keywords: append([]string{"name", "title", "location", "about"}, lowerAll(p.About.Keywords)...),
	})

	for _, sc := range []struct {
		name   string
		skills []string
	}{
		{"programming", p.Skills.Programming},
		{"ai_ml", p.Skills.AIML},
		{"tools", p.Skills.Tools},
		{"automation", p.Skills.Automation},
	} {
		if len(sc.skills) == 0 {
			continue
		}
		entries = append(entries, Entry{
			ID:       "skills-" + sc.name,
			Content:  fmt.Sprintf("%s: %s", strings.ToUpper(strings.ReplaceAll(sc.name, "_", " ")), strings.Join(sc.skills, ", ")),
			Category: "skills",
			Keywords: append(lowerAll(sc.skills), sc.name, "skill", "skills"),
		})
	}

	for i, proj := range p.Projects {
		entries = append(entries, Entry{
			ID:       fmt.Sprintf("project-%d", i+1),
			Content:  fmt.Sprintf("%s: %s Impact: %s. Technologies: %s.", proj.Title, proj.Description, proj.Impact, strings.Join(proj.Tech, ", ")),
			Category: "projects",
			Keywords: append(lowerAll(proj.Tech), strings.ToLower(proj.Title), "project", "demo"),
		})
	}

	for i, exp := range p.Experience {
		entries = append(entries, Entry{
			ID:       fmt.Sprintf("experience-%d", i+1),
			Content:  fmt.Sprintf("%s at %s (%s): %s", exp.Title, exp.Company, exp.Duration, exp.Description),
			Category: "experience",
			Keywords: append(lowerAll(exp.Technologies), "experience", "work", strings.ToLower(exp.Company)),
		})
	}

	entries = append(entries, Entry{
		ID:       "contact-info",
		Content:  fmt.Sprintf("Contact %s: Email: %s, Phone: %s, LinkedIn: %s, GitHub: %s", p.Personal.Name, p.Personal.Email, p.Personal.Phone, p.Personal.LinkedIn, p.Personal.GitHub),
		Category: "contact",
		Keywords: []string{"contact", "email", "phone", "linkedin", "github", "reach", "connect"},
	})

	return &Index{entries: entries}
}

// Search scores every entry against the query and returns the best matches.
// Per query word: +2 for a keyword match, +1 for a content match. Entries
// with zero score are excluded. Results are ordered by score descending,
// then by id for determinism.
func (idx *Index) Search(query string, limit int) []Result {
	if limit <= 0 {
		limit = 3
	}
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return nil
	}

	var results []Result
	for _, e := range idx.entries {
		score := 0
		content := strings.ToLower(e.Content)
		for _, w := range words {
			if matchesKeyword(e.Keywords, w) {
				score += 2
			}
			if strings.Contains(content, w) {
				score++
			}
		}
		if score > 0 {
			results = append(results, Result{Entry: e, Score: score})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ID < results[j].ID
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func matchesKeyword(keywords []string, word string) bool {
	for _, k := range keywords {
		if strings.Contains(k, word) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
