// Package intent maps free-text visitor messages to a closed set of topic
// labels using ordered pattern rules.
package intent

// Intent is a closed-set label describing what the visitor is asking about.
type Intent string

const (
	AIExpertise           Intent = "ai_expertise"
	Availability          Intent = "availability"
	TechnicalArchitecture Intent = "technical_architecture"
	Projects              Intent = "projects"
	Skills                Intent = "skills"
	Experience            Intent = "experience"
	Contact               Intent = "contact"
	Recruitment           Intent = "recruitment"
	Greeting              Intent = "greeting"
	Pricing               Intent = "pricing"
	Education             Intent = "education"
	Teamwork              Intent = "teamwork"
	General               Intent = "general"
)

// All lists every intent in classification order. The order is load-bearing:
// classification rules are evaluated in this sequence and the first match
// wins (see classifier.go).
var All = []Intent{
	AIExpertise,
	Availability,
	TechnicalArchitecture,
	Projects,
	Skills,
	Experience,
	Contact,
	Recruitment,
	Greeting,
	Pricing,
	Education,
	Teamwork,
	General,
}

// Valid reports whether i is a member of the closed intent set.
func Valid(i Intent) bool {
	for _, v := range All {
		if v == i {
			return true
		}
	}
	return false
}
