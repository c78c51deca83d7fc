package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/eshfaq-ux/foliochat/internal/config"
	"github.com/eshfaq-ux/foliochat/internal/profile"
	"github.com/eshfaq-ux/foliochat/internal/resume"
)

// --- ask ---

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the running assistant a question",
	Long: `Ask the running assistant a question.

Examples:
  foliochat ask "what projects have you built?"
  foliochat ask --session 01J8X... "and which of those used Python?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")
		sessionID, _ := cmd.Flags().GetString("session")

		client, err := newAPIClient()
		if err != nil {
			return err
		}

		req := map[string]any{
			"messages": []map[string]string{{"role": "user", "content": question}},
		}
		if sessionID != "" {
			req["sessionId"] = sessionID
		}

		resp, err := client.post(cmd.Context(), "/chat", req)
		if err != nil {
			return err
		}

		var result struct {
			Message     string   `json:"message"`
			Intent      string   `json:"intent"`
			SessionID   string   `json:"sessionId"`
			Suggestions []string `json:"suggestions"`
		}
		if err := decodeJSON(resp, &result); err != nil {
			return err
		}

		fmt.Println(result.Message)
		fmt.Println()
		printStatus("Intent", "%s", result.Intent)
		printStatus("Session", "%s", result.SessionID)
		if len(result.Suggestions) > 0 {
			printStatus("Follow-ups", "%s", strings.Join(result.Suggestions, " | "))
		}
		return nil
	},
}

func init() {
	askCmd.Flags().String("session", "", "session id to continue a conversation")
}

// --- stats ---

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show visitor analytics from the running server",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		if client.token == "" {
			return fmt.Errorf("FOLIO_ADMIN_TOKEN is not set; analytics routes are disabled")
		}

		resp, err := client.get(cmd.Context(), "/analytics/stats")
		if err != nil {
			return err
		}

		var stats struct {
			TotalSessions   int            `json:"totalSessions"`
			TotalMessages   int            `json:"totalMessages"`
			TopIntents      map[string]int `json:"topIntents"`
			ContactRequests int            `json:"contactRequests"`
		}
		if err := decodeJSON(resp, &stats); err != nil {
			return err
		}

		printStatus("Sessions", "%d", stats.TotalSessions)
		printStatus("Messages", "%d", stats.TotalMessages)
		printStatus("Contact requests", "%d", stats.ContactRequests)
		if len(stats.TopIntents) > 0 {
			fmt.Fprintln(os.Stderr, colorize(colorBold, "  Top intents:"))
			for name, count := range stats.TopIntents {
				fmt.Fprintf(os.Stderr, "    %-25s %d\n", name, count)
			}
		}
		return nil
	},
}

// --- resume / cover letter ---

// Both render locally from the profile; no running server required.

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Render the profile as a Markdown resume",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfileForCLI()
		if err != nil {
			return err
		}
		fmt.Print(resume.Markdown(p))
		return nil
	},
}

var coverLetterCmd = &cobra.Command{
	Use:   "cover-letter",
	Short: "Render a cover letter from the profile",
	Long: `Render a cover letter from the profile.

Examples:
  foliochat cover-letter --company "Acme Robotics" --position "Backend Engineer"
  foliochat cover-letter --company Acme --recipient "Ms. Rivera"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		company, _ := cmd.Flags().GetString("company")
		position, _ := cmd.Flags().GetString("position")
		recipient, _ := cmd.Flags().GetString("recipient")

		p, err := loadProfileForCLI()
		if err != nil {
			return err
		}

		fmt.Print(resume.CoverLetter(p, resume.CoverLetterParams{
			RecipientName: recipient,
			CompanyName:   company,
			Position:      position,
			Date:          time.Now(),
		}))
		return nil
	},
}

func init() {
	coverLetterCmd.Flags().String("company", "", "company name")
	coverLetterCmd.Flags().String("position", "", "position applied for")
	coverLetterCmd.Flags().String("recipient", "", "recipient name (default: Hiring Manager)")
}

func loadProfileForCLI() (*profile.Profile, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.Profile.Path != "" {
		return profile.Load(cfg.Profile.Path)
	}
	return profile.Default(), nil
}
