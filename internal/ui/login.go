package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zytra-commerce/zytra-client/internal/auth"
)

type loginMode int

const (
	modeSignIn loginMode = iota
	modeForgotUsername
	modeForgotPassword
	modeResetPassword
)

// LoginModel covers sign-in for both roles plus the OTP recovery flows.
type LoginModel struct {
	deps   *Deps
	styles Styles

	mode    loginMode
	asAdmin bool

	userName textinput.Model
	password textinput.Model

	email       textinput.Model
	otp         textinput.Model
	newPassword textinput.Model
	otpSent     bool
	recovered   string
	resetUserID int

	focus int
	err   string
}

func NewLoginModel(deps *Deps, styles Styles) LoginModel {
	name := textinput.New()
	name.Placeholder = "username"
	name.Focus()

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.EchoMode = textinput.EchoPassword

	email := textinput.New()
	email.Placeholder = "account email"

	otp := textinput.New()
	otp.Placeholder = "one-time code"
	otp.CharLimit = 6

	newPass := textinput.New()
	newPass.Placeholder = "new password"
	newPass.EchoMode = textinput.EchoPassword

	return LoginModel{
		deps: deps, styles: styles,
		userName: name, password: pass,
		email: email, otp: otp, newPassword: newPass,
	}
}

func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case errMsg:
		m.err = msg.err.Error()
		return m, nil

	case otpSentMsg:
		m.otpSent = true
		m.err = ""
		return m, nil

	case recoveredUsernameMsg:
		m.recovered = msg.userName
		m.mode = modeSignIn
		m.userName.SetValue(msg.userName)
		m.err = ""
		return m, nil

	case recoveredUserIDMsg:
		m.resetUserID = msg.userID
		m.mode = modeResetPassword
		m.err = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			m.nextField()
			return m, nil
		case "ctrl+a":
			m.asAdmin = !m.asAdmin
			return m, nil
		case "ctrl+u":
			m.switchMode(modeForgotUsername)
			return m, nil
		case "ctrl+w":
			m.switchMode(modeForgotPassword)
			return m, nil
		case "esc":
			m.switchMode(modeSignIn)
			return m, nil
		case "enter":
			return m, m.submit()
		}
	}
	return m, m.updateFields(msg)
}

func (m *LoginModel) switchMode(mode loginMode) {
	m.mode = mode
	m.focus = 0
	m.otpSent = false
	m.err = ""
	m.applyFocus()
}

func (m *LoginModel) fields() []*textinput.Model {
	switch m.mode {
	case modeForgotUsername, modeForgotPassword:
		if m.otpSent {
			return []*textinput.Model{&m.email, &m.otp}
		}
		return []*textinput.Model{&m.email}
	case modeResetPassword:
		return []*textinput.Model{&m.newPassword}
	default:
		return []*textinput.Model{&m.userName, &m.password}
	}
}

func (m *LoginModel) nextField() {
	fields := m.fields()
	m.focus = (m.focus + 1) % len(fields)
	m.applyFocus()
}

func (m *LoginModel) applyFocus() {
	for i, f := range m.fields() {
		if i == m.focus {
			f.Focus()
		} else {
			f.Blur()
		}
	}
}

func (m *LoginModel) updateFields(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, f := range m.fields() {
		var cmd tea.Cmd
		*f, cmd = f.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *LoginModel) submit() tea.Cmd {
	d := m.deps
	switch m.mode {
	case modeSignIn:
		cred := auth.Credentials{UserName: m.userName.Value(), Password: m.password.Value()}
		asAdmin := m.asAdmin
		return func() tea.Msg {
			var err error
			if asAdmin {
				err = d.Auth.LoginAdmin(cred)
			} else {
				err = d.Auth.LoginUser(cred)
			}
			if err != nil {
				return errMsg{err}
			}
			return loggedInMsg{admin: asAdmin}
		}

	case modeForgotUsername, modeForgotPassword:
		email, otp := m.email.Value(), m.otp.Value()
		if !m.otpSent {
			return func() tea.Msg {
				if err := d.Auth.GenerateOTP(email); err != nil {
					return errMsg{err}
				}
				return otpSentMsg{}
			}
		}
		if m.mode == modeForgotUsername {
			return func() tea.Msg {
				name, err := d.Auth.VerifyForgotUsernameOTP(email, otp)
				if err != nil {
					return errMsg{err}
				}
				return recoveredUsernameMsg{name}
			}
		}
		return func() tea.Msg {
			id, err := d.Auth.VerifyForgotPasswordOTP(email, otp)
			if err != nil {
				return errMsg{err}
			}
			return recoveredUserIDMsg{id}
		}

	case modeResetPassword:
		userID, newPassword := m.resetUserID, m.newPassword.Value()
		if !auth.ValidPassword(newPassword) {
			m.err = "password needs 8+ characters with upper, lower, digit and special"
			return nil
		}
		return func() tea.Msg {
			if err := d.Auth.UpdateForgotPassword(userID, newPassword); err != nil {
				return errMsg{err}
			}
			return statusMsg{"password reset, sign in"}
		}
	}
	return nil
}

func (m LoginModel) View() string {
	var b strings.Builder
	switch m.mode {
	case modeSignIn:
		role := "shopper"
		if m.asAdmin {
			role = "staff"
		}
		b.WriteString(m.styles.Subtitle.Render("Sign in as "+role) + "\n")
		if m.recovered != "" {
			b.WriteString(m.styles.Success.Render("your username is "+m.recovered) + "\n")
		}
		b.WriteString(m.userName.View() + "\n")
		b.WriteString(m.password.View() + "\n")
		b.WriteString(m.styles.Muted.Render("ctrl+a switch role · ctrl+u forgot username · ctrl+w forgot password") + "\n")

	case modeForgotUsername, modeForgotPassword:
		what := "username"
		if m.mode == modeForgotPassword {
			what = "password"
		}
		b.WriteString(m.styles.Subtitle.Render("Recover "+what) + "\n")
		b.WriteString(m.email.View() + "\n")
		if m.otpSent {
			b.WriteString(m.styles.Muted.Render("code sent to your email") + "\n")
			b.WriteString(m.otp.View() + "\n")
		}
		b.WriteString(m.styles.Muted.Render("enter to continue · esc back") + "\n")

	case modeResetPassword:
		b.WriteString(m.styles.Subtitle.Render("Choose a new password") + "\n")
		b.WriteString(m.newPassword.View() + "\n")
		b.WriteString(m.styles.Muted.Render("enter to save · esc back") + "\n")
	}

	if m.err != "" {
		b.WriteString(m.styles.Error.Render(m.err) + "\n")
	}
	return b.String()
}
