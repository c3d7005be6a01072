package teaui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"paisa.dev/kharcha/pkg/app"
	"paisa.dev/kharcha/pkg/expense"
	"paisa.dev/kharcha/pkg/session"
)

// Model views
type view int

const (
	viewLogin view = iota
	viewExpenses
	viewAdd
)

// add flow steps
type addStep int

const (
	stepCategory addStep = iota
	stepSubCategory
	stepAmount
)

// expense item for the list
type expenseItem struct{ e expense.Expense }

func (it expenseItem) Title() string {
	return fmt.Sprintf("%s  %s / %s  %s", it.e.Date.Clock(), it.e.Category, it.e.SubCategory, expense.FormatAmount(it.e.Amount))
}
func (it expenseItem) Description() string { return "" }
func (it expenseItem) FilterValue() string { return it.e.Category + " " + it.e.SubCategory }

// day heading row for weekly and monthly views
type dayItem struct{ heading string }

func (it dayItem) Title() string       { return it.heading }
func (it dayItem) Description() string { return "" }
func (it dayItem) FilterValue() string { return it.heading }

// Model contains UI state
type Model struct {
	svc *app.Service
	ctx context.Context

	view   view
	period expense.Period

	// gen tags each issued fetch; responses carrying an older tag are
	// dropped so a fast period switch cannot paint stale rows.
	gen int

	expList list.Model

	mobile     textinput.Model
	password   textinput.Model
	loginFocus int

	step     addStep
	catIndex int
	subIndex int
	subs     []string
	amount   textinput.Model

	report     *expense.Report
	showReport bool

	who    string
	status string

	termWidth  int
	termHeight int
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service) Model {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)

	l := list.New([]list.Item{}, d, 80, 20)
	l.Title = "Daily Expenses"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	mob := textinput.New()
	mob.Placeholder = "Mobile number"
	mob.CharLimit = 10
	mob.Prompt = ""
	mob.Focus()

	pass := textinput.New()
	pass.Placeholder = "Password"
	pass.EchoMode = textinput.EchoPassword
	pass.Prompt = ""

	amt := textinput.New()
	amt.Placeholder = "Amount"
	amt.CharLimit = 12
	amt.Prompt = ""

	m := Model{
		svc:      svc,
		ctx:      context.Background(),
		view:     viewLogin,
		period:   expense.Daily,
		expList:  l,
		mobile:   mob,
		password: pass,
		amount:   amt,
		status:   "Sign in to continue",
	}

	if svc != nil {
		if id, ok := svc.Session.Current(); ok {
			m.view = viewExpenses
			m.who = id.FirstName()
			m.status = expensesHelp
		}
	}
	return m
}

const expensesHelp = "d/w/m period, a add, s summary, r refresh, L logout, q quit"

// Init loads initial data when a session already exists
func (m Model) Init() tea.Cmd {
	if m.view != viewExpenses {
		return textinput.Blink
	}
	return m.loadExpenses()
}

// loadExpenses issues a fetch for the current period tagged with a fresh
// generation. Only the most recently issued fetch may land.
func (m *Model) loadExpenses() tea.Cmd {
	m.gen++
	gen := m.gen
	period := m.period
	svc := m.svc
	ctx := m.ctx
	return func() tea.Msg {
		ents, err := svc.Expenses(ctx, period)
		if err != nil {
			return fetchErrMsg{gen: gen, err: err}
		}
		return expensesLoadedMsg{gen: gen, items: buildExpenseItems(period, ents)}
	}
}

// loadReport reuses the current generation so a report request raced by a
// period switch is dropped together with its expense fetch.
func (m *Model) loadReport() tea.Cmd {
	gen := m.gen
	period := m.period
	svc := m.svc
	ctx := m.ctx
	return func() tea.Msg {
		r, err := svc.Report(ctx, period)
		if err != nil {
			return fetchErrMsg{gen: gen, err: err}
		}
		return reportLoadedMsg{gen: gen, report: r}
	}
}

func buildExpenseItems(period expense.Period, ents []expense.Expense) []list.Item {
	items := make([]list.Item, 0, len(ents))
	if period == expense.Daily {
		for _, e := range ents {
			items = append(items, expenseItem{e: e})
		}
		return items
	}
	for _, day := range expense.GroupByDay(ents) {
		items = append(items, dayItem{heading: day[0].Date.DayHeading()})
		for _, e := range day {
			items = append(items, expenseItem{e: e})
		}
	}
	return items
}

// messages
type errMsg struct{ err error }
type fetchErrMsg struct {
	gen int
	err error
}
type expensesLoadedMsg struct {
	gen   int
	items []list.Item
}
type reportLoadedMsg struct {
	gen    int
	report *expense.Report
}
type loginDoneMsg struct{ id session.Identity }
type addedMsg struct{}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	skipListRouting := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case fetchErrMsg:
		if msg.gen == m.gen {
			m.status = "ERR: " + msg.err.Error()
		}
	case expensesLoadedMsg:
		if msg.gen == m.gen {
			m.expList.SetItems(msg.items)
			m.status = expensesHelp
		}
	case reportLoadedMsg:
		if msg.gen == m.gen {
			m.report = msg.report
		}
	case loginDoneMsg:
		m.view = viewExpenses
		m.who = msg.id.FirstName()
		m.period = expense.Daily
		m.expList.Title = m.period.Title() + " Expenses"
		m.password.Reset()
		m.status = expensesHelp
		cmds = append(cmds, m.loadExpenses())
	case addedMsg:
		m.view = viewExpenses
		m.period = expense.Daily
		m.expList.Title = m.period.Title() + " Expenses"
		m.status = "Expense added successfully!"
		cmds = append(cmds, m.loadExpenses())
	case tea.KeyPressMsg:
		switch m.view {
		case viewLogin:
			skipListRouting = true
			m.updateLogin(msg, &cmds)
		case viewAdd:
			skipListRouting = true
			m.updateAdd(msg, &cmds)
		case viewExpenses:
			switch msg.String() {
			case "ctrl+c", "q":
				cmds = append(cmds, tea.Quit)
				skipListRouting = true
			case "d":
				m.switchPeriod(expense.Daily, &cmds)
			case "w":
				m.switchPeriod(expense.Weekly, &cmds)
			case "m":
				m.switchPeriod(expense.Monthly, &cmds)
			case "r":
				cmds = append(cmds, m.loadExpenses())
				if m.showReport {
					cmds = append(cmds, m.loadReport())
				}
			case "s":
				if m.showReport {
					m.showReport = false
					m.report = nil
				} else {
					m.showReport = true
					cmds = append(cmds, m.loadReport())
				}
				skipListRouting = true
			case "a":
				m.enterAdd(&cmds)
				skipListRouting = true
			case "L":
				if err := m.svc.Logout(); err != nil {
					m.status = "ERR: " + err.Error()
				} else {
					m.resetToLogin(&cmds)
				}
				skipListRouting = true
			}
		}
	}

	if m.view == viewExpenses && !skipListRouting {
		var cmd tea.Cmd
		m.expList, cmd = m.expList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) switchPeriod(p expense.Period, cmds *[]tea.Cmd) {
	if m.period == p {
		return
	}
	m.period = p
	m.expList.Title = p.Title() + " Expenses"
	m.report = nil
	*cmds = append(*cmds, m.loadExpenses())
	if m.showReport {
		*cmds = append(*cmds, m.loadReport())
	}
}

func (m *Model) updateLogin(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		*cmds = append(*cmds, tea.Quit)
	case "tab", "shift+tab", "up", "down":
		if m.loginFocus == 0 {
			m.loginFocus = 1
			m.mobile.Blur()
			if cmd := m.password.Focus(); cmd != nil {
				*cmds = append(*cmds, cmd)
			}
		} else {
			m.loginFocus = 0
			m.password.Blur()
			if cmd := m.mobile.Focus(); cmd != nil {
				*cmds = append(*cmds, cmd)
			}
		}
	case "enter":
		if m.loginFocus == 0 {
			m.loginFocus = 1
			m.mobile.Blur()
			if cmd := m.password.Focus(); cmd != nil {
				*cmds = append(*cmds, cmd)
			}
			return
		}
		mobile := strings.TrimSpace(m.mobile.Value())
		password := m.password.Value()
		if mobile == "" || password == "" {
			m.status = "Mobile and password are required"
			return
		}
		m.status = "Signing in..."
		svc := m.svc
		ctx := m.ctx
		*cmds = append(*cmds, func() tea.Msg {
			id, err := svc.Login(ctx, mobile, password)
			if err != nil {
				return errMsg{err}
			}
			return loginDoneMsg{id: id}
		})
	default:
		var cmd tea.Cmd
		if m.loginFocus == 0 {
			m.mobile, cmd = m.mobile.Update(msg)
		} else {
			m.password, cmd = m.password.Update(msg)
		}
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) enterAdd(cmds *[]tea.Cmd) {
	m.view = viewAdd
	m.step = stepCategory
	m.catIndex = 0
	m.subIndex = 0
	m.subs = nil
	m.amount.Reset()
	m.status = "up/down select, enter confirm, esc back"
	_ = cmds
}

func (m *Model) updateAdd(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch m.step {
	case stepCategory:
		cats := expense.Categories()
		switch msg.String() {
		case "ctrl+c":
			*cmds = append(*cmds, tea.Quit)
		case "esc", "q":
			m.view = viewExpenses
			m.status = "Add cancelled"
		case "up", "k":
			m.catIndex = wrapIndex(m.catIndex-1, len(cats))
		case "down", "j":
			m.catIndex = wrapIndex(m.catIndex+1, len(cats))
		case "enter":
			subs, _ := expense.Subcategories(cats[m.catIndex])
			m.subs = subs
			m.subIndex = 0
			m.step = stepSubCategory
		}
	case stepSubCategory:
		switch msg.String() {
		case "ctrl+c":
			*cmds = append(*cmds, tea.Quit)
		case "esc", "q":
			m.step = stepCategory
		case "up", "k":
			m.subIndex = wrapIndex(m.subIndex-1, len(m.subs))
		case "down", "j":
			m.subIndex = wrapIndex(m.subIndex+1, len(m.subs))
		case "enter":
			m.step = stepAmount
			if cmd := m.amount.Focus(); cmd != nil {
				*cmds = append(*cmds, cmd)
			}
			*cmds = append(*cmds, textinput.Blink)
		}
	case stepAmount:
		switch msg.String() {
		case "ctrl+c":
			*cmds = append(*cmds, tea.Quit)
		case "esc":
			m.amount.Blur()
			m.step = stepSubCategory
		case "enter":
			amount, err := expense.ParseAmount(m.amount.Value())
			if err != nil {
				m.status = err.Error()
				return
			}
			draft := expense.Draft{
				Category:    expense.Categories()[m.catIndex],
				SubCategory: m.subs[m.subIndex],
				Amount:      amount,
			}
			m.amount.Blur()
			m.status = "Saving..."
			svc := m.svc
			ctx := m.ctx
			*cmds = append(*cmds, func() tea.Msg {
				if err := svc.AddExpense(ctx, draft); err != nil {
					return errMsg{err}
				}
				return addedMsg{}
			})
		default:
			var cmd tea.Cmd
			m.amount, cmd = m.amount.Update(msg)
			*cmds = append(*cmds, cmd)
		}
	}
}

func (m *Model) resetToLogin(cmds *[]tea.Cmd) {
	m.view = viewLogin
	m.who = ""
	m.report = nil
	m.showReport = false
	m.expList.SetItems(nil)
	m.mobile.Reset()
	m.password.Reset()
	m.password.Blur()
	m.loginFocus = 0
	if cmd := m.mobile.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	m.status = "Sign in to continue"
}

func wrapIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 {
		return n - 1
	}
	if i >= n {
		return 0
	}
	return i
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2)
)

// View renders the active screen plus a status footer
func (m Model) View() string {
	var body string
	switch m.view {
	case viewLogin:
		body = m.viewLogin()
	case viewAdd:
		body = m.viewAdd()
	default:
		body = m.viewExpenses()
	}
	return body + "\n\n" + statusStyle.Render(m.status)
}

func (m Model) viewLogin() string {
	lines := []string{
		titleStyle.Render("kharcha"),
		"",
		labelStyle.Render("Mobile:   ") + m.mobile.View(),
		labelStyle.Render("Password: ") + m.password.View(),
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewExpenses() string {
	body := m.expList.View()
	if m.who != "" {
		body = titleStyle.Render(fmt.Sprintf("Hey %s, how are u doing today?", m.who)) + "\n\n" + body
	}
	if m.showReport && m.report != nil {
		lines := []string{fmt.Sprintf("Total: %s", expense.FormatAmount(m.report.Total)), ""}
		for _, c := range m.report.Categories {
			lines = append(lines, fmt.Sprintf("%s: %s", c.Category, expense.FormatAmount(c.Amount)))
		}
		body += "\n\n" + panelStyle.Render(strings.Join(lines, "\n"))
	}
	return body
}

func (m Model) viewAdd() string {
	switch m.step {
	case stepCategory:
		return renderPicker("Category", expense.Categories(), m.catIndex)
	case stepSubCategory:
		return renderPicker("Subcategory", m.subs, m.subIndex)
	default:
		cats := expense.Categories()
		head := fmt.Sprintf("%s / %s", cats[m.catIndex], m.subs[m.subIndex])
		return panelStyle.Render(head + "\n\nAmount: " + m.amount.View())
	}
}

func renderPicker(title string, options []string, index int) string {
	lines := []string{title + ":"}
	for i, opt := range options {
		indicator := "  "
		if i == index {
			indicator = "→ "
		}
		lines = append(lines, indicator+opt)
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

// Program entry
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// applySizes recalculates the list size from the terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	width := m.termWidth - 2
	if width < 20 {
		width = 20
	}
	// Leave room for greeting and status lines
	height := m.termHeight - 6
	if height < 5 {
		height = 5
	}
	m.expList.SetSize(width, height)
}
