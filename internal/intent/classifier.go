package intent

import (
	"regexp"
	"strings"
)

// rule pairs a compiled pattern with the intent it selects.
type rule struct {
	intent  Intent
	pattern *regexp.Regexp
}

// rules are evaluated top to bottom and the first match wins. The ordering
// is deliberate precedence, not grouping: AI/ML phrasing must be checked
// before generic skills so "machine learning skills" classifies as
// ai_expertise, and availability phrasing before generic experience so
// "are you available" never lands on experience. Do not reorder.
var rules = []rule{
	{AIExpertise, regexp.MustCompile(`\bai\b|\bml\b|machine learning|artificial intelligence|deep learning|\bllms?\b|\bgpt\b|openai|langchain|chatbots?|\bnlp\b|prompt engineering|\brag\b`)},
	{Availability, regexp.MustCompile(`availab|open to work|free to work|when can you start|start date|take on|new projects?\b.*\b(now|currently)|currently (open|free)`)},
	{TechnicalArchitecture, regexp.MustCompile(`architect|system design|scalab|microservice|infrastructure|tech stack|deploy|database design|api design`)},
	{Projects, regexp.MustCompile(`projects?\b|portfolio|\bdemos?\b|\bbuilt\b|\bbuild\b.*\bwhat\b|show me|case stud|linkvault|github`)},
	{Skills, regexp.MustCompile(`skills?\b|technolog|programming|frameworks?\b|languages?\b|\btools?\b|proficien|expert in`)},
	{Experience, regexp.MustCompile(`experience|\bbackground\b|career|\bworked\b|work history|employment|companies|freelanc`)},
	{Contact, regexp.MustCompile(`contact|e-?mail|phone|\breach\b|get in touch|connect|linkedin|telegram|\bcall\b`)},
	{Recruitment, regexp.MustCompile(`recruit|hiring|\bhire\b|position|vacancy|\brole\b|interview|resume|\bcv\b|candidate|job offer|opportunit`)},
	{Greeting, regexp.MustCompile(`\b(hi|hello|hey|howdy|greetings)\b|good (morning|afternoon|evening)|what'?s up`)},
	{Pricing, regexp.MustCompile(`pric|\brates?\b|\bcost\b|charge|budget|quote|salary|compensation|how much`)},
	{Education, regexp.MustCompile(`education|degree|universit|college|stud(y|ied|ies)|academic|\bmca\b|\bbca\b|certif`)},
	{Teamwork, regexp.MustCompile(`\bteam\b|collaborat|communicat|agile|scrum|work together|leadership|pair programming`)},
}

// Classify maps a raw visitor message to an Intent. Matching is
// case-insensitive and first-match-wins over the rule list; anything that
// matches no rule, including the empty string, is General. Classify is a
// total function with no side effects.
func Classify(utterance string) Intent {
	msg := strings.ToLower(strings.TrimSpace(utterance))
	if msg == "" {
		return General
	}
	for _, r := range rules {
		if r.pattern.MatchString(msg) {
			return r.intent
		}
	}
	return General
}
