package profile

// Profile is the structured description of the portfolio owner. It is loaded
// once at startup and never mutated, so it is shared across requests without
// synchronization.
type Profile struct {
	Personal       Personal        `json:"personal"`
	About          About           `json:"about"`
	Skills         Skills          `json:"skills"`
	Projects       []Project       `json:"projects"`
	Experience     []Experience    `json:"experience"`
	Certifications []Certification `json:"certifications"`
}

// Personal holds identity and contact details.
type Personal struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Telegram string `json:"telegram"`
}

// About is the free-form professional summary.
type About struct {
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// Skills groups skill names by category.
type Skills struct {
	Programming []string `json:"programming"`
	AIML        []string `json:"ai_ml"`
	Tools       []string `json:"tools"`
	Automation  []string `json:"automation"`
}

type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	Impact      string   `json:"impact"`
	GitHub      string   `json:"github,omitempty"`
	Demo        string   `json:"demo,omitempty"`
	Featured    bool     `json:"featured"`
}

type Experience struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Duration     string   `json:"duration"`
	Location     string   `json:"location,omitempty"`
	Type         string   `json:"type,omitempty"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

type Certification struct {
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description"`
}
