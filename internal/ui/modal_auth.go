package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AuthStep is the sub-view the auth modal is showing.
type AuthStep int

const (
	AuthInitial AuthStep = iota
	AuthLogin
	AuthRegister
)

// Choices on the initial step, in cursor order.
const (
	authChoiceGoogle = iota
	authChoiceEmail
	authChoiceRegister
	authChoiceCount
)

const authInputWidth = 32

// AuthModal gates the dashboard until the user logs in.
// Only the login form has an effect; Google and registration are shown but inert.
type AuthModal struct {
	Step AuthStep

	choice   int
	login    []textinput.Model // email, password
	register []textinput.Model // first, last, email, password
	focus    int
	notice   string
}

var _ View = (*AuthModal)(nil)

// NewAuthModal creates the modal on its initial step.
func NewAuthModal() *AuthModal {
	return &AuthModal{
		Step:   AuthInitial,
		choice: authChoiceEmail,
		login: []textinput.Model{
			newAuthInput("Enter your email or username", false),
			newAuthInput("Enter your password", true),
		},
		register: []textinput.Model{
			newAuthInput("First Name", false),
			newAuthInput("Last Name", false),
			newAuthInput("Enter your email", false),
			newAuthInput("Enter your password", true),
		},
	}
}

func newAuthInput(placeholder string, secret bool) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Width = authInputWidth
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	return ti
}

// Init implements View.
func (m *AuthModal) Init() tea.Cmd {
	return textinput.Blink
}

// inputs returns the fields of the current step.
func (m *AuthModal) inputs() []textinput.Model {
	switch m.Step {
	case AuthLogin:
		return m.login
	case AuthRegister:
		return m.register
	}
	return nil
}

// goTo switches step and focuses its first field.
func (m *AuthModal) goTo(step AuthStep) tea.Cmd {
	m.Step = step
	m.notice = ""
	m.focus = 0
	return m.focusField()
}

func (m *AuthModal) focusField() tea.Cmd {
	fields := m.inputs()
	var cmd tea.Cmd
	for i := range fields {
		if i == m.focus {
			cmd = fields[i].Focus()
		} else {
			fields[i].Blur()
		}
	}
	return cmd
}

// Update implements View.
func (m *AuthModal) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateFocused(msg)
	}
	if m.Step == AuthInitial {
		return m, m.updateInitial(km)
	}

	fields := m.inputs()
	switch km.String() {
	case "esc":
		return m, m.goTo(AuthInitial)
	case "tab", "down":
		m.focus = (m.focus + 1) % len(fields)
		return m, m.focusField()
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + len(fields)) % len(fields)
		return m, m.focusField()
	case "ctrl+n":
		if m.Step == AuthLogin {
			return m, m.goTo(AuthRegister)
		}
	case "ctrl+l":
		if m.Step == AuthRegister {
			return m, m.goTo(AuthLogin)
		}
	case "enter":
		if m.focus < len(fields)-1 {
			m.focus++
			return m, m.focusField()
		}
		return m, m.submit()
	}
	return m, m.updateFocused(msg)
}

func (m *AuthModal) updateInitial(km tea.KeyMsg) tea.Cmd {
	switch km.String() {
	case "esc":
		return func() tea.Msg { return DismissModalMsg{} }
	case "j", "down", "tab":
		m.choice = (m.choice + 1) % authChoiceCount
	case "k", "up", "shift+tab":
		m.choice = (m.choice - 1 + authChoiceCount) % authChoiceCount
	case "g":
		m.choice = authChoiceGoogle
		return m.pick()
	case "l":
		m.choice = authChoiceEmail
		return m.pick()
	case "r":
		m.choice = authChoiceRegister
		return m.pick()
	case "enter":
		return m.pick()
	}
	return nil
}

func (m *AuthModal) pick() tea.Cmd {
	switch m.choice {
	case authChoiceGoogle:
		m.notice = "Google sign-in is not available yet."
		return nil
	case authChoiceRegister:
		return m.goTo(AuthRegister)
	}
	return m.goTo(AuthLogin)
}

func (m *AuthModal) submit() tea.Cmd {
	if m.Step == AuthRegister {
		m.notice = "Registration is not available yet. Log in instead."
		return nil
	}
	email := strings.TrimSpace(m.login[0].Value())
	return func() tea.Msg { return LoginMsg{Email: email} }
}

func (m *AuthModal) updateFocused(msg tea.Msg) tea.Cmd {
	fields := m.inputs()
	if m.focus >= len(fields) {
		return nil
	}
	var cmd tea.Cmd
	fields[m.focus], cmd = fields[m.focus].Update(msg)
	return cmd
}

// View implements View.
func (m *AuthModal) View() string {
	var b strings.Builder
	switch m.Step {
	case AuthInitial:
		m.viewInitial(&b)
	case AuthLogin:
		b.WriteString(Styles.Hint.Render("‹ Back (esc)") + "\n\n")
		b.WriteString(Styles.Title.Render("Login with email") + "\n")
		b.WriteString(Styles.Muted.Render("Login using your email address.") + "\n\n")
		m.viewField(&b, "Email or Username", m.login[0])
		m.viewField(&b, "Password", m.login[1])
		b.WriteString(authButton("Login", m.focus == len(m.login)-1) + "\n\n")
		b.WriteString(Styles.Hint.Render("Forgot password   ctrl+n: Create New Account"))
	case AuthRegister:
		b.WriteString(Styles.Hint.Render("‹ Back (esc)") + "\n\n")
		b.WriteString(Styles.Title.Render("Register with email") + "\n")
		b.WriteString(Styles.Muted.Render("Register using your email address.") + "\n\n")
		m.viewField(&b, "First Name", m.register[0])
		m.viewField(&b, "Last Name", m.register[1])
		m.viewField(&b, "Email", m.register[2])
		m.viewField(&b, "Password", m.register[3])
		b.WriteString(authButton("Create my account", m.focus == len(m.register)-1) + "\n\n")
		b.WriteString(Styles.Hint.Render("Already have an account? ctrl+l: Login"))
	}
	if m.notice != "" {
		b.WriteString("\n\n" + Styles.Details.Render(m.notice))
	}
	return Styles.Box.Width(authInputWidth + 10).Render(b.String())
}

func (m *AuthModal) viewInitial(b *strings.Builder) {
	b.WriteString(Styles.Title.Render("Continue with an account") + "\n")
	b.WriteString(Styles.Muted.Render("You must log in or register to continue.") + "\n\n")
	b.WriteString(authButton("Continue with Google", m.choice == authChoiceGoogle) + "\n")
	b.WriteString(authButton("Login with Email", m.choice == authChoiceEmail) + "\n\n")
	link := "New User? Create New Account"
	if m.choice == authChoiceRegister {
		b.WriteString(Styles.Selected.Render("› "+link) + "\n\n")
	} else {
		b.WriteString(Styles.Muted.Render("  "+link) + "\n\n")
	}
	b.WriteString(Styles.Hint.Render("By continuing, you agree to our Privacy Policy and T&Cs"))
}

func (m *AuthModal) viewField(b *strings.Builder, label string, in textinput.Model) {
	b.WriteString(Styles.Label.Bold(true).Render(label) + "\n")
	b.WriteString(in.View() + "\n\n")
}

func authButton(label string, active bool) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Width(authInputWidth).
		Align(lipgloss.Center)
	if active {
		style = style.BorderForeground(lipgloss.Color(ColorHighlight)).Bold(true)
	}
	return style.Render(label)
}
