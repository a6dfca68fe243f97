package tui

import (
	"strings"

	"github.com/vibe-gaming/verify/internal/wizard"
)

func (m Model) View() string {
	var sb strings.Builder
	email := m.styles.Email.Render(m.session.Email())

	switch m.state {
	case wizard.CollectEmail:
		sb.WriteString(m.styles.Title.Render("Recover your account"))
		sb.WriteString("\n\nEmail\n")
		sb.WriteString(m.email.View())
	case wizard.AwaitCodeRequest:
		sb.WriteString(m.styles.Title.Render("Verify your identity"))
		sb.WriteString("\n\nWe'll send a security code to " + email + ".")
	case wizard.EnterCode:
		sb.WriteString(m.styles.Title.Render("Enter code"))
		sb.WriteString("\n\nIf " + email + " matches an account, a code is on its way.\n\n")
		sb.WriteString(m.code.View())
	case wizard.ResetPassword:
		sb.WriteString(m.styles.Title.Render("Choose a new password"))
		sb.WriteString("\n\nAccount: " + email + "\n\n")
		sb.WriteString(m.password.View())
		sb.WriteString("\n")
		sb.WriteString(m.confirm.View())
	case wizard.Done:
		sb.WriteString(m.styles.Title.Render("Password updated"))
		if url := m.session.RedirectURL(); url != "" {
			sb.WriteString("\n\nSign in at " + url)
		}
	}

	if m.busy {
		sb.WriteString("\n\n" + m.styles.Muted.Render("Working..."))
	}
	if m.errText != "" {
		sb.WriteString("\n\n" + m.styles.Error.Render(m.errText))
	}

	sb.WriteString(m.styles.Help.Render(m.help()))

	return m.styles.Frame.Render(sb.String()) + "\n"
}

func (m Model) help() string {
	switch m.state {
	case wizard.CollectEmail:
		return "\nenter: next • ctrl+c: quit"
	case wizard.AwaitCodeRequest:
		return "\nenter: get code • esc: cancel"
	case wizard.EnterCode:
		return "\nenter: verify • esc: cancel"
	case wizard.ResetPassword:
		return "\ntab: switch field • enter: reset password • esc: cancel"
	}
	return ""
}
