package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/vibe-gaming/verify/internal/wizard"
	"github.com/vibe-gaming/verify/internal/wizard/tui"
)

var (
	baseURL   string
	userAgent string
)

var rootCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Reset an account password with an emailed security code",
	RunE: func(cmd *cobra.Command, args []string) error {
		session := wizard.NewSession(wizard.NewClient(baseURL), wizard.WithUserAgent(userAgent))

		final, err := tea.NewProgram(tui.New(session)).Run()
		if err != nil {
			return fmt.Errorf("run wizard: %w", err)
		}

		if m, ok := final.(tui.Model); ok {
			if url := m.RedirectURL(); url != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Password updated. Sign in at %s\n", url)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&baseURL, "base-url", "http://localhost:8000", "verification service base URL")
	rootCmd.Flags().StringVar(&userAgent, "user-agent", "verify-wizard/1.0", "user agent reported with the reset")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
