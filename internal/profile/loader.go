package profile

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed portfolio.json
var defaultPortfolio []byte

// Load reads the profile from path, or falls back to the embedded default
// portfolio when path is empty. The returned Profile is validated and must
// be treated as read-only.
func Load(path string) (*Profile, error) {
	data := defaultPortfolio
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading profile file: %w", err)
		}
		data = b
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	if err := validate(&p); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &p, nil
}

// Default returns the embedded portfolio profile. Panics only if the
// embedded document is malformed, which is a build-time defect.
func Default() *Profile {
	p, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("embedded portfolio is invalid: %v", err))
	}
	return p
}

func validate(p *Profile) error {
	if p.Personal.Name == "" {
		return fmt.Errorf("personal.name is required")
	}
	if p.Personal.Email == "" {
		return fmt.Errorf("personal.email is required")
	}
	if p.Personal.Title == "" {
		return fmt.Errorf("personal.title is required")
	}
	return nil
}
