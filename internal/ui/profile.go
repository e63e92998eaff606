package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zytra-commerce/zytra-client/internal/auth"
	"github.com/zytra-commerce/zytra-client/internal/user"
)

type profileMode int

const (
	profileViewing profileMode = iota
	profileEditing
	profilePassword
)

// profileEditFields is the editable subset of the account, in form order.
var profileEditFields = []auth.Field{}

func init() {
	skip := map[string]bool{"password": true, "userName": true}
	for _, f := range auth.UserFields {
		if !skip[f.Name] {
			profileEditFields = append(profileEditFields, f)
		}
	}
}

// ProfileModel shows the account, edits it, changes the password and
// upgrades the membership.
type ProfileModel struct {
	deps   *Deps
	styles Styles

	mode    profileMode
	profile user.Profile

	inputs []textinput.Model
	focus  int
	errs   map[string]string

	oldPass textinput.Model
	newPass textinput.Model
	passErr string
}

func NewProfileModel(deps *Deps, styles Styles) ProfileModel {
	oldPass := textinput.New()
	oldPass.Placeholder = "current password"
	oldPass.EchoMode = textinput.EchoPassword

	newPass := textinput.New()
	newPass.Placeholder = "new password"
	newPass.EchoMode = textinput.EchoPassword

	return ProfileModel{deps: deps, styles: styles, oldPass: oldPass, newPass: newPass}
}

func (m ProfileModel) Update(msg tea.Msg) (ProfileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case profileMsg:
		m.profile = msg.profile
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case profileViewing:
			switch msg.String() {
			case "e":
				m.startEditing()
				return m, nil
			case "w":
				m.mode = profilePassword
				m.focus = 0
				m.oldPass.SetValue("")
				m.newPass.SetValue("")
				m.oldPass.Focus()
				m.newPass.Blur()
				m.passErr = ""
				return m, nil
			case "u":
				if !m.profile.Prime() {
					return m, m.subscribePrime()
				}
				return m, nil
			}

		case profileEditing:
			switch msg.String() {
			case "esc":
				m.mode = profileViewing
				return m, nil
			case "tab", "down":
				m.moveFocus(1)
				return m, nil
			case "shift+tab", "up":
				m.moveFocus(-1)
				return m, nil
			case "enter":
				return m, m.saveProfile()
			}
			var cmd tea.Cmd
			m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
			return m, cmd

		case profilePassword:
			switch msg.String() {
			case "esc":
				m.mode = profileViewing
				return m, nil
			case "tab":
				if m.focus == 0 {
					m.focus = 1
					m.oldPass.Blur()
					m.newPass.Focus()
				} else {
					m.focus = 0
					m.newPass.Blur()
					m.oldPass.Focus()
				}
				return m, nil
			case "enter":
				return m, m.savePassword()
			}
			var cmd tea.Cmd
			if m.focus == 0 {
				m.oldPass, cmd = m.oldPass.Update(msg)
			} else {
				m.newPass, cmd = m.newPass.Update(msg)
			}
			return m, cmd
		}
	}
	return m, nil
}

func (m *ProfileModel) startEditing() {
	m.mode = profileEditing
	m.errs = nil
	m.inputs = make([]textinput.Model, len(profileEditFields))
	current := m.values(m.profile)
	for i, f := range profileEditFields {
		ti := textinput.New()
		ti.Placeholder = f.Label
		ti.CharLimit = 100
		ti.SetValue(current[f.Name])
		m.inputs[i] = ti
	}
	m.focus = 0
	m.inputs[0].Focus()
}

func (m *ProfileModel) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *ProfileModel) values(p user.Profile) map[string]string {
	return map[string]string{
		"firstName": p.FirstName, "lastName": p.LastName, "phoneNumber": p.PhoneNumber,
		"email": p.Email, "doorNumber": p.DoorNumber, "street": p.Street, "village": p.Village,
		"city": p.City, "district": p.District, "state": p.State, "country": p.Country,
		"landMark": p.LandMark, "postalCode": p.PostalCode,
	}
}

func (m *ProfileModel) saveProfile() tea.Cmd {
	values := map[string]string{}
	for i, f := range profileEditFields {
		values[f.Name] = m.inputs[i].Value()
	}
	m.errs = auth.Validate(profileEditFields, values)
	if len(m.errs) > 0 {
		return nil
	}

	p := m.profile
	p.FirstName, p.LastName = values["firstName"], values["lastName"]
	p.PhoneNumber, p.Email = values["phoneNumber"], values["email"]
	p.DoorNumber, p.Street, p.Village = values["doorNumber"], values["street"], values["village"]
	p.City, p.District, p.State = values["city"], values["district"], values["state"]
	p.Country, p.LandMark, p.PostalCode = values["country"], values["landMark"], values["postalCode"]

	d := m.deps
	m.mode = profileViewing
	return func() tea.Msg {
		if err := d.User.UpdateProfile(d.Session.UserID(), p); err != nil {
			return errMsg{err}
		}
		return profileMsg{p}
	}
}

func (m *ProfileModel) savePassword() tea.Cmd {
	change := user.PasswordChange{OldPassword: m.oldPass.Value(), NewPassword: m.newPass.Value()}
	if !auth.ValidPassword(change.NewPassword) {
		m.passErr = "password needs 8+ characters with upper, lower, digit and special"
		return nil
	}
	d := m.deps
	m.mode = profileViewing
	return func() tea.Msg {
		if err := d.User.UpdatePassword(d.Session.UserID(), change); err != nil {
			return errMsg{err}
		}
		return statusMsg{"password changed"}
	}
}

func (m *ProfileModel) subscribePrime() tea.Cmd {
	d := m.deps
	return func() tea.Msg {
		if err := d.User.SubscribePrime(d.Session.UserID()); err != nil {
			return errMsg{err}
		}
		p, err := d.User.Details(d.Session.UserID())
		if err != nil {
			return errMsg{err}
		}
		return profileMsg{p}
	}
}

func (m ProfileModel) View() string {
	var b strings.Builder
	p := m.profile

	switch m.mode {
	case profileEditing:
		b.WriteString(m.styles.Subtitle.Render("Edit profile") + "\n")
		for i, f := range profileEditFields {
			b.WriteString(m.inputs[i].View())
			if msg, bad := m.errs[f.Name]; bad {
				b.WriteString("  " + m.styles.Error.Render(msg))
			}
			b.WriteString("\n")
		}
		b.WriteString(m.styles.Muted.Render("tab next · enter save · esc cancel") + "\n")

	case profilePassword:
		b.WriteString(m.styles.Subtitle.Render("Change password") + "\n")
		b.WriteString(m.oldPass.View() + "\n")
		b.WriteString(m.newPass.View() + "\n")
		if m.passErr != "" {
			b.WriteString(m.styles.Error.Render(m.passErr) + "\n")
		}
		b.WriteString(m.styles.Muted.Render("tab switch · enter save · esc cancel") + "\n")

	default:
		b.WriteString(m.styles.Subtitle.Render(p.FirstName+" "+p.LastName) + "\n")
		membership := p.MemberShipStatus
		if p.Prime() {
			membership = m.styles.Badge.Render(membership)
		}
		b.WriteString("membership: " + membership + "\n")
		b.WriteString("username:   " + p.UserName + "\n")
		b.WriteString("email:      " + p.Email + "\n")
		b.WriteString("phone:      " + p.PhoneNumber + "\n")
		b.WriteString("address:    " + strings.Join([]string{p.DoorNumber, p.Street, p.City, p.State, p.PostalCode}, ", ") + "\n")
		if p.RegisteredAt != "" {
			b.WriteString(m.styles.Muted.Render("member since "+p.RegisteredAt) + "\n")
		}
		hint := "e edit · w change password"
		if !p.Prime() {
			hint += " · u upgrade to prime"
		}
		b.WriteString(m.styles.Muted.Render(hint) + "\n")
	}
	return b.String()
}
