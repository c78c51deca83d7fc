package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_EmbeddedDefault(t *testing.T) {
	p, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Personal.Name == "" {
		t.Error("embedded profile has empty name")
	}
	if p.Personal.Email == "" {
		t.Error("embedded profile has empty email")
	}
	if len(p.Skills.AIML) == 0 {
		t.Error("embedded profile has no AI/ML skills")
	}
	if len(p.Projects) == 0 {
		t.Error("embedded profile has no projects")
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	content := `{
		"personal": {"name": "Jane Doe", "title": "Engineer", "location": "Berlin", "email": "jane@example.com"},
		"about": {"description": "Builds things."},
		"skills": {"programming": ["Go"]}
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Personal.Name != "Jane Doe" {
		t.Errorf("Name = %q, want Jane Doe", p.Personal.Name)
	}
	if len(p.Skills.Programming) != 1 || p.Skills.Programming[0] != "Go" {
		t.Errorf("Programming = %v, want [Go]", p.Skills.Programming)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_InvalidProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	// Missing email.
	content := `{"personal": {"name": "X", "title": "Y"}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestRender_ContainsSections(t *testing.T) {
	p := Default()
	out := Render(p)

	for _, section := range []string{"[Summary]", "[Skills]", "[Projects]", "[Experience]", "[Certifications & Education]", "[Contact]"} {
		if !strings.Contains(out, section) {
			t.Errorf("rendered profile missing section %s", section)
		}
	}
	if !strings.Contains(out, p.Personal.Email) {
		t.Error("rendered profile missing contact email")
	}
	for _, proj := range p.Projects {
		if !strings.Contains(out, proj.Title) {
			t.Errorf("rendered profile missing project %q", proj.Title)
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	p := Default()
	if Render(p) != Render(p) {
		t.Error("Render is not deterministic")
	}
}
