package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zytra-commerce/zytra-client/internal/auth"
)

// RegisterModel is a schema-driven form: the field list comes straight from
// the registration schema, so the form and the validation can never drift
// apart.
type RegisterModel struct {
	deps   *Deps
	styles Styles

	asAdmin bool
	schema  []auth.Field
	inputs  []textinput.Model
	focus   int
	errs    map[string]string
}

func NewRegisterModel(deps *Deps, styles Styles) RegisterModel {
	m := RegisterModel{deps: deps, styles: styles}
	m.build(auth.UserFields)
	return m
}

func (m *RegisterModel) build(schema []auth.Field) {
	m.schema = schema
	m.inputs = make([]textinput.Model, len(schema))
	for i, f := range schema {
		ti := textinput.New()
		ti.Placeholder = f.Label
		ti.CharLimit = 100
		if f.Name == "password" {
			ti.EchoMode = textinput.EchoPassword
		}
		m.inputs[i] = ti
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.errs = nil
}

func (m RegisterModel) Update(msg tea.Msg) (RegisterModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.move(1)
			return m, nil
		case "shift+tab", "up":
			m.move(-1)
			return m, nil
		case "ctrl+a":
			m.asAdmin = !m.asAdmin
			if m.asAdmin {
				m.build(auth.AdminFields)
			} else {
				m.build(auth.UserFields)
			}
			return m, nil
		case "enter":
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) move(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) values() map[string]string {
	out := map[string]string{}
	for i, f := range m.schema {
		out[f.Name] = m.inputs[i].Value()
	}
	return out
}

func (m *RegisterModel) submit() tea.Cmd {
	values := m.values()
	m.errs = auth.Validate(m.schema, values)
	if len(m.errs) > 0 {
		return nil
	}

	d := m.deps
	if m.asAdmin {
		reg := auth.AdminRegistration{
			FirstName: values["firstName"], LastName: values["lastName"],
			PhoneNumber: values["phoneNumber"], Email: values["email"],
			Address: values["address"], UserName: values["userName"], Password: values["password"],
		}
		return func() tea.Msg {
			if err := d.Auth.RegisterAdmin(reg); err != nil {
				return errMsg{err}
			}
			return registeredMsg{}
		}
	}
	reg := auth.UserRegistration{
		FirstName: values["firstName"], LastName: values["lastName"],
		PhoneNumber: values["phoneNumber"], Email: values["email"],
		DoorNumber: values["doorNumber"], Street: values["street"], Village: values["village"],
		City: values["city"], District: values["district"], State: values["state"],
		Country: values["country"], LandMark: values["landMark"], PostalCode: values["postalCode"],
		UserName: values["userName"], Password: values["password"],
	}
	return func() tea.Msg {
		if err := d.Auth.RegisterUser(reg); err != nil {
			return errMsg{err}
		}
		return registeredMsg{}
	}
}

func (m RegisterModel) View() string {
	var b strings.Builder
	role := "shopper"
	if m.asAdmin {
		role = "staff"
	}
	b.WriteString(m.styles.Subtitle.Render("Create a "+role+" account") + "\n")
	for i, f := range m.schema {
		b.WriteString(m.inputs[i].View())
		if msg, bad := m.errs[f.Name]; bad {
			b.WriteString("  " + m.styles.Error.Render(msg))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Muted.Render("tab next field · ctrl+a switch role · enter submit") + "\n")
	return b.String()
}
