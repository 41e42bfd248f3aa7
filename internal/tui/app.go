// Package tui provides the interactive Bubble Tea dashboard for timeworth.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/timeworthapp/timeworth/internal/cli"
	"github.com/timeworthapp/timeworth/internal/config"
	"github.com/timeworthapp/timeworth/internal/finance"
	"github.com/timeworthapp/timeworth/internal/gps"
	"github.com/timeworthapp/timeworth/internal/model"
	"github.com/timeworthapp/timeworth/internal/store"
	"github.com/timeworthapp/timeworth/internal/tui/components"
	"github.com/timeworthapp/timeworth/internal/tui/theme"
)

// dataLoadedMsg is sent when the initial store read finishes.
type dataLoadedMsg struct {
	profile    model.Profile
	hasProfile bool
	records    []model.Record
	err        error
}

const (
	minTerminalWidth = 64
	maxContentWidth  = 120
	recordPageSize   = 12
)

// App is the root Bubble Tea model.
type App struct {
	st  *store.Store
	cfg config.Config

	// Data
	profile    model.Profile
	hasProfile bool
	records    []model.Record
	loaded     bool
	loadErr    error

	// Derived on every data change
	traj       model.Trajectory
	month      model.MonthBudget
	totals     model.Totals
	targetFund float64
	hourlyRate float64

	// UI state
	width     int
	height    int
	activeTab int
	recCursor int

	// First-run profile wizard
	form      *ProfileForm
	needSetup bool

	spinner spinner.Model
}

// NewApp creates the TUI app model. The store stays open for the
// lifetime of the program; the caller closes it after Run returns.
func NewApp(st *store.Store, cfg config.Config) App {
	theme.SetActive(cfg.Appearance.Theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		st:      st,
		cfg:     cfg,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(loadDataCmd(a.st), a.spinner.Tick)
}

func loadDataCmd(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		msg := dataLoadedMsg{hasProfile: true}

		profile, err := st.LoadProfile()
		switch {
		case errors.Is(err, store.ErrNoProfile):
			msg.hasProfile = false
		case err != nil:
			msg.err = err
			return msg
		default:
			msg.profile = profile
		}

		msg.records, msg.err = st.ListRecords()
		return msg
	}
}

func (a *App) recompute() {
	if !a.hasProfile {
		return
	}
	a.hourlyRate = finance.HourlyRate(a.profile.MonthlySalary)
	a.targetFund = gps.TargetFund(a.profile)
	a.traj = gps.EstimatedAge(float64(a.profile.TargetRetireAge), a.records)
	a.month = gps.MonthBudget(a.profile, a.records, time.Now())
	a.totals = gps.Totals(a.records)

	if a.recCursor >= len(a.records) {
		a.recCursor = len(a.records) - 1
	}
	if a.recCursor < 0 {
		a.recCursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form.Form = a.form.Form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case dataLoadedMsg:
		a.loaded = true
		a.loadErr = msg.err
		a.hasProfile = msg.hasProfile
		a.profile = msg.profile
		a.records = msg.records
		if !a.hasProfile && msg.err == nil {
			a.needSetup = true
			a.form = NewProfileForm(model.Profile{})
			if a.width > 0 {
				a.form.Form = a.form.Form.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.form.Form.Init()
		}
		a.recompute()
		return a, nil

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return a, tea.Quit
		}
		if !a.loaded {
			return a, nil
		}
		if a.needSetup && a.form != nil {
			return a.updateForm(msg)
		}
		return a.handleKey(key)
	}

	// Forward unhandled messages to the wizard (cursor blinks, etc.)
	if a.needSetup && a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q", "esc":
		return a, tea.Quit

	case "tab", "right", "l":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil

	case "shift+tab", "left", "h":
		a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
		return a, nil

	case "j", "down":
		if a.activeTab == 1 && a.recCursor < len(a.records)-1 {
			a.recCursor++
		}
		return a, nil

	case "k", "up":
		if a.activeTab == 1 && a.recCursor > 0 {
			a.recCursor--
		}
		return a, nil
	}

	if idx := components.TabIdxByKey([]rune(key)[0]); len(key) == 1 && idx >= 0 {
		a.activeTab = idx
	}
	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form.Form = f
	}

	if a.form.Form.State == huh.StateCompleted {
		profile, err := a.form.Profile(a.profile, time.Now())
		if err != nil {
			a.loadErr = err
			return a, tea.Quit
		}
		if err := a.st.SaveProfile(profile); err != nil {
			a.loadErr = err
			return a, tea.Quit
		}
		a.profile = profile
		a.hasProfile = true
		a.needSetup = false
		a.form = nil
		a.recompute()
		return a, nil
	}

	if a.form.Form.State == huh.StateAborted {
		return a, tea.Quit
	}

	return a, cmd
}

func (a App) contentWidth() int {
	if a.width > maxContentWidth {
		return maxContentWidth
	}
	return a.width
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d).\n", a.width, minTerminalWidth)
	}
	if !a.loaded {
		return fmt.Sprintf("\n  %s loading records...\n", a.spinner.View())
	}
	if a.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(theme.Active.Red)
		return "\n  " + errStyle.Render("error: "+a.loadErr.Error()) + "\n"
	}
	if a.needSetup && a.form != nil {
		return a.form.Form.View()
	}
	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	cw := a.contentWidth()

	var b strings.Builder
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n\n")

	switch a.activeTab {
	case 0:
		b.WriteString(a.viewOverview(cw))
	case 1:
		b.WriteString(a.viewRecords(cw))
	case 2:
		b.WriteString(a.viewSettings(cw))
	}

	hint := lipgloss.NewStyle().Foreground(t.TextDim).
		Render("  tab/o/r/s switch · j/k scroll · q quit")
	b.WriteString("\n")
	b.WriteString(hint)
	return b.String()
}

func (a App) viewOverview(cw int) string {
	t := theme.Active

	statusStyle := lipgloss.NewStyle().Foreground(cli.StatusColor(a.traj.Status))

	metrics := []components.Metric{
		{
			Label: "Estimated retire age",
			Value: fmt.Sprintf("%.2f", a.traj.EstimatedRetireAge),
			Note:  fmt.Sprintf("target %d", a.profile.TargetRetireAge),
		},
		{
			Label: "Trajectory",
			Value: statusStyle.Render(statusWord(a.traj.Status)),
			Note:  cli.FormatAgeDiffString(a.traj.AgeDiffYears),
		},
		{
			Label: "Hours banked",
			Value: cli.FormatTimeCost(a.traj.TotalSavedHours),
			Note:  a.cfg.General.CurrencySymbol + cli.FormatCurrency(a.totals.TotalSaved),
		},
		{
			Label: "Hours spent",
			Value: cli.FormatTimeCost(a.traj.TotalSpentHours),
			Note:  a.cfg.General.CurrencySymbol + cli.FormatCurrency(a.totals.TotalSpent),
		},
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	sym := a.cfg.General.CurrencySymbol
	barW := cw - 30
	if barW > 48 {
		barW = 48
	}
	if barW < 16 {
		barW = 16
	}

	var savePct, spendPct float64
	if a.month.RequiredMonthlySavings > 0 {
		savePct = a.month.ActualMonthlySavings / a.month.RequiredMonthlySavings
		spendPct = a.month.SpentThisMonth / a.month.RequiredMonthlySavings
	}

	lineStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	body := strings.Join([]string{
		components.BudgetBar("Saved", savePct, 8, barW),
		components.BudgetBar("Spent", spendPct, 8, barW),
		"",
		lineStyle.Render(fmt.Sprintf("Required this month  %s%s", sym, cli.FormatCurrency(a.month.RequiredMonthlySavings))),
		lineStyle.Render(fmt.Sprintf("Unallocated funds    %s%s", sym, cli.FormatCurrency(a.month.UnallocatedFunds))),
		lineStyle.Render(fmt.Sprintf("Months on the plan   %d", a.month.MonthsElapsed)),
		lineStyle.Render(fmt.Sprintf("Target fund          %s%s", sym, cli.FormatCurrency(a.targetFund))),
	}, "\n")

	title := time.Now().Format("January 2006")
	b.WriteString(components.ContentCard(title, body, cw))
	return b.String()
}

func (a App) viewRecords(cw int) string {
	t := theme.Active

	if len(a.records) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).
			Render("  No records yet. Add one with: timeworth add 120 --spend")
	}

	// Newest first; the store returns oldest first.
	top := len(a.records) - 1 - a.recCursor
	start := top - recordPageSize + 1
	if start < 0 {
		start = 0
	}

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	saveStyle := lipgloss.NewStyle().Foreground(t.Green)
	spendStyle := lipgloss.NewStyle().Foreground(t.Red)

	sym := a.cfg.General.CurrencySymbol
	var lines []string
	for i := top; i >= start; i-- {
		r := a.records[i]

		kind := saveStyle.Render("save ")
		if r.Kind == model.KindSpend {
			kind = spendStyle.Render("spend")
		}
		recur := "     "
		if r.Recurring {
			recur = "/mo  "
			if !r.EndedAt.IsZero() {
				recur = "ended"
			}
		}
		cat := r.Category
		if cat == "" {
			cat = "-"
		}

		line := fmt.Sprintf("%s  %s %s  %12s  %-14s %s",
			r.Timestamp.Local().Format("2006-01-02"),
			kind, recur,
			sym+cli.FormatCurrency(r.Amount),
			truncate(cat, 14),
			cli.FormatTimeCost(r.TimeCostHours),
		)

		style := rowStyle
		if i == top {
			style = selStyle
		}
		lines = append(lines, "  "+style.Render(line))
	}

	header := dimStyle.Render(fmt.Sprintf("  %d records · newest first", len(a.records)))
	return header + "\n\n" + strings.Join(lines, "\n")
}

func (a App) viewSettings(cw int) string {
	t := theme.Active
	sym := a.cfg.General.CurrencySymbol

	lineStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	row := func(label, value string) string {
		return lineStyle.Render(fmt.Sprintf("%-22s %s", label, value))
	}

	body := strings.Join([]string{
		row("Age", fmt.Sprintf("%d", a.profile.Age)),
		row("Monthly salary", sym+cli.FormatCurrency(a.profile.MonthlySalary)),
		row("Target retire age", fmt.Sprintf("%d", a.profile.TargetRetireAge)),
		row("Current savings", sym+cli.FormatCurrency(a.profile.CurrentSavings)),
		row("Monthly savings", sym+cli.FormatCurrency(a.profile.MonthlySavings)),
		row("Inflation", cli.FormatPercent(a.profile.InflationRatePercent/100)),
		row("Expected return", cli.FormatPercent(a.profile.ROIRatePercent/100)),
		row("Hourly rate", sym+cli.FormatCurrency(a.hourlyRate)),
		"",
		row("Theme", theme.Active.Name),
		row("Config", config.ConfigPath()),
	}, "\n")

	hint := lipgloss.NewStyle().Foreground(t.TextDim).
		Render("\n  Edit with: timeworth profile set <field> <value>")

	return components.ContentCard("Profile", body, cw) + hint
}

func statusWord(s model.TrajectoryStatus) string {
	switch s {
	case model.StatusAhead:
		return "ahead of plan"
	case model.StatusBehind:
		return "behind plan"
	default:
		return "on track"
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
