package intent

// suggestions maps every intent to a small set of follow-up questions shown
// to the visitor after a response. Kept exhaustive over the intent set so a
// missing entry is a code defect, not a runtime surprise.
var suggestions = map[Intent][]string{
	AIExpertise: {
		"Which projects use these AI skills?",
		"Have you built production LLM systems?",
		"What automation tools do you work with?",
	},
	Availability: {
		"How can I reach you directly?",
		"What kind of projects are you looking for?",
		"What are your rates?",
	},
	TechnicalArchitecture: {
		"What does your typical tech stack look like?",
		"Tell me about a system you designed",
		"How do you approach scalability?",
	},
	Projects: {
		"What technologies were used in these projects?",
		"Can I see the source code?",
		"What was the business impact?",
	},
	Skills: {
		"Which projects showcase these skills best?",
		"What's your AI/ML experience?",
		"How long have you used these technologies?",
	},
	Experience: {
		"What were your biggest achievements?",
		"What's your educational background?",
		"Are you available for new work?",
	},
	Contact: {
		"Are you available for new projects?",
		"What's your portfolio like?",
		"What are your strongest skills?",
	},
	Recruitment: {
		"Can I get a copy of your resume?",
		"Are you open to full-time roles?",
		"How can I schedule an interview?",
	},
	Greeting: {
		"What are your technical skills?",
		"Show me your featured projects",
		"How can I contact you?",
	},
	Pricing: {
		"What does a typical project cost?",
		"Do you work on hourly or fixed contracts?",
		"How can we discuss my project?",
	},
	Education: {
		"What certifications do you hold?",
		"How does your education apply to your work?",
		"What's your professional experience?",
	},
	Teamwork: {
		"Have you worked with remote teams?",
		"What's your communication style?",
		"Tell me about a team project",
	},
	General: {
		"What are your technical skills?",
		"Tell me about your projects",
		"How can I reach you?",
	},
}

// SuggestionsFor returns follow-up questions for the given intent. Unknown
// values fall back to the General set; the returned slice must not be
// mutated by callers.
func SuggestionsFor(i Intent) []string {
	if s, ok := suggestions[i]; ok {
		return s
	}
	return suggestions[General]
}
