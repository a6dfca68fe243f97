// Package tui renders the recovery wizard as a bubbletea program.
package tui

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vibe-gaming/verify/internal/wizard"
)

const requestTimeout = 30 * time.Second

// stepDoneMsg carries the outcome of a backend call started from Update.
type stepDoneMsg struct {
	err error
}

type Model struct {
	session *wizard.Session
	styles  Styles

	// state mirrors session.State() and is refreshed only when no call is in flight.
	state   wizard.State
	busy    bool
	errText string

	email    textinput.Model
	code     textinput.Model
	password textinput.Model
	confirm  textinput.Model
}

func New(session *wizard.Session) Model {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Focus()

	code := textinput.New()
	code.Placeholder = "123456"
	code.CharLimit = 6

	password := textinput.New()
	password.Placeholder = "New password"
	password.EchoMode = textinput.EchoPassword

	confirm := textinput.New()
	confirm.Placeholder = "Confirm password"
	confirm.EchoMode = textinput.EchoPassword

	return Model{
		session:  session,
		styles:   DefaultStyles(),
		state:    session.State(),
		email:    email,
		code:     code,
		password: password,
		confirm:  confirm,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// RedirectURL is the login destination once the reset succeeded.
func (m Model) RedirectURL() string {
	if m.state != wizard.Done {
		return ""
	}
	return m.session.RedirectURL()
}

func (m Model) State() wizard.State { return m.state }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errText = humanize(msg.err)
			return m, nil
		}
		m.errText = ""
		m.state = m.session.State()
		m.focusForState()
		if m.state == wizard.Done {
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			if m.busy || m.state == wizard.CollectEmail || m.state == wizard.Done {
				return m, nil
			}
			m.session.Cancel()
			m.reset()
			return m, nil
		case tea.KeyEnter:
			if m.busy {
				return m, nil
			}
			return m.submit()
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
			if m.state == wizard.ResetPassword {
				m.toggleFocus()
				return m, nil
			}
		}
	}

	return m.updateInputs(msg)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	m.errText = ""

	switch m.state {
	case wizard.CollectEmail:
		if err := m.session.SubmitEmail(m.email.Value()); err != nil {
			m.errText = humanize(err)
			return m, nil
		}
		m.state = m.session.State()
		m.focusForState()
		return m, nil

	case wizard.AwaitCodeRequest:
		return m.run(func(ctx context.Context) error {
			return m.session.RequestCode(ctx)
		})

	case wizard.EnterCode:
		if strings.TrimSpace(m.code.Value()) == "" {
			m.errText = humanize(wizard.ErrCodeRequired)
			return m, nil
		}
		code := m.code.Value()
		return m.run(func(ctx context.Context) error {
			return m.session.SubmitCode(ctx, code)
		})

	case wizard.ResetPassword:
		password, confirm := m.password.Value(), m.confirm.Value()
		if err := wizard.ValidatePassword(password, confirm); err != nil {
			m.errText = humanize(err)
			return m, nil
		}
		return m.run(func(ctx context.Context) error {
			return m.session.SubmitPassword(ctx, password, confirm)
		})
	}

	return m, nil
}

func (m Model) run(call func(ctx context.Context) error) (tea.Model, tea.Cmd) {
	m.busy = true
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return stepDoneMsg{err: call(ctx)}
	}
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.state {
	case wizard.CollectEmail:
		m.email, cmd = m.email.Update(msg)
	case wizard.EnterCode:
		m.code, cmd = m.code.Update(msg)
	case wizard.ResetPassword:
		var c1, c2 tea.Cmd
		m.password, c1 = m.password.Update(msg)
		m.confirm, c2 = m.confirm.Update(msg)
		cmd = tea.Batch(c1, c2)
	}

	return m, cmd
}

func (m *Model) toggleFocus() {
	if m.password.Focused() {
		m.password.Blur()
		m.confirm.Focus()
	} else {
		m.confirm.Blur()
		m.password.Focus()
	}
}

func (m *Model) focusForState() {
	m.email.Blur()
	m.code.Blur()
	m.password.Blur()
	m.confirm.Blur()

	switch m.state {
	case wizard.CollectEmail:
		m.email.Focus()
	case wizard.EnterCode:
		m.code.Focus()
	case wizard.ResetPassword:
		m.password.Focus()
	}
}

// reset clears every input after a cancel.
func (m *Model) reset() {
	m.email.Reset()
	m.code.Reset()
	m.password.Reset()
	m.confirm.Reset()
	m.errText = ""
	m.state = m.session.State()
	m.focusForState()
}

func humanize(err error) string {
	msg := err.Error()
	if msg == "" {
		return "An error occurred. Please try again."
	}
	r := []rune(msg)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
