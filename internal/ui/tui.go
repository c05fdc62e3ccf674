// Package ui provides the terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/SaraLubadah/planner/internal/config"
	"github.com/SaraLubadah/planner/internal/reminder"
	"github.com/SaraLubadah/planner/internal/task"
	"github.com/SaraLubadah/planner/internal/view"
)

// RunTUI starts the TUI over the given store.
func RunTUI(ctx context.Context, cfg *config.Config, store *task.Store, logger *log.Logger) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newTUIModel(cfg, store, logger)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// pendingAction is a destructive gesture awaiting confirmation.
type pendingAction int

const (
	pendingNone pendingAction = iota
	pendingRemove
	pendingClear
)

type tuiModel struct {
	cfg    *config.Config
	store  *task.Store
	logger *log.Logger

	overview *view.Overview
	report   *reminder.Report
	rows     []row

	cursor       int
	pending      pendingAction
	pendingID    string
	showHelp     bool
	persistErr   error
	tickInterval time.Duration
}

// row is one renderable line: a subject header or a task.
type row struct {
	header  bool
	subject string
	count   int
	task    task.Task
}

type tickMsg time.Time

func newTUIModel(cfg *config.Config, store *task.Store, logger *log.Logger) *tuiModel {
	m := &tuiModel{
		cfg:          cfg,
		store:        store,
		logger:       logger,
		tickInterval: time.Second,
	}
	m.recompute()
	return m
}

func (m *tuiModel) Init() tea.Cmd {
	return tickCmd(m.tickInterval)
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.pending != pendingNone {
			return m.updateConfirm(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "j", "down":
			m.moveCursor(1)
			return m, nil
		case "k", "up":
			m.moveCursor(-1)
			return m, nil
		case " ", "x", "enter":
			if t, ok := m.selected(); ok {
				m.mutate(func() error { return m.store.ToggleComplete(t.ID) })
			}
			return m, nil
		case "d":
			if t, ok := m.selected(); ok {
				m.pending = pendingRemove
				m.pendingID = t.ID
			}
			return m, nil
		case "c":
			if m.hasCompleted() {
				m.pending = pendingClear
			}
			return m, nil
		case "r", "f5":
			// Re-open from disk, then re-derive.
			m.store = task.Open(m.store.Path(), m.logger)
			m.recompute()
			return m, nil
		case "h", "?":
			m.showHelp = !m.showHelp
			return m, nil
		}
	case tickMsg:
		// Keeps the reminder banner correct across midnight.
		m.recompute()
		return m, tickCmd(m.tickInterval)
	}

	return m, nil
}

// updateConfirm handles keys while a destructive action awaits confirmation.
func (m *tuiModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		switch m.pending {
		case pendingRemove:
			id := m.pendingID
			m.mutate(func() error { return m.store.Remove(id) })
		case pendingClear:
			m.mutate(func() error {
				_, err := m.store.RemoveCompleted()
				return err
			})
		}
	case "ctrl+c":
		return m, tea.Quit
	}
	m.pending = pendingNone
	m.pendingID = ""
	return m, nil
}

// mutate runs a store operation and re-derives view and reminder
// state, keeping the persist-failure notice visible if the write failed.
func (m *tuiModel) mutate(fn func() error) {
	if err := fn(); err != nil {
		// In-memory state is still authoritative for this session.
		m.logger.Error("persist failed", "err", err)
		m.persistErr = err
	} else {
		m.persistErr = nil
	}
	m.recompute()
}

// recompute rebuilds the derived state from the store. Always a full
// recomputation; the collection is small and local.
func (m *tuiModel) recompute() {
	tasks := m.store.Tasks()
	m.overview = view.Build(tasks)
	m.report = reminder.Evaluate(tasks, reminder.Today())
	m.rows = flatten(m.overview)
	m.clampCursor()
}

func flatten(o *view.Overview) []row {
	if o == nil {
		return nil
	}
	var rows []row
	for _, g := range o.Groups {
		rows = append(rows, row{header: true, subject: g.Subject, count: g.Count()})
		for _, t := range g.Tasks {
			rows = append(rows, row{task: t})
		}
	}
	return rows
}

func (m *tuiModel) moveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}
	i := m.cursor + delta
	for i >= 0 && i < len(m.rows) {
		if !m.rows[i].header {
			m.cursor = i
			return
		}
		i += delta
	}
}

// clampCursor keeps the cursor on a task row after the rows change.
func (m *tuiModel) clampCursor() {
	if len(m.rows) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.rows[m.cursor].header {
		m.moveCursor(1)
		if m.rows[m.cursor].header {
			m.moveCursor(-1)
		}
	}
}

func (m *tuiModel) selected() (task.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) || m.rows[m.cursor].header {
		return task.Task{}, false
	}
	return m.rows[m.cursor].task, true
}

func (m *tuiModel) hasCompleted() bool {
	for _, r := range m.rows {
		if !r.header && r.task.Completed {
			return true
		}
	}
	return false
}

func (m *tuiModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Planner") + "\n\n")

	if m.showHelp {
		writeHelp(&b)
		b.WriteString(footerStyle.Render("Press h to go back | q to quit") + "\n")
		return b.String()
	}

	writeBanner(&b, m.report)

	if m.persistErr != nil {
		b.WriteString(errorStyle.Render("Saving failed: "+m.persistErr.Error()) + "\n\n")
	}

	if m.overview == nil {
		b.WriteString("No tasks yet. Add one with: planner add\n\n")
		b.WriteString(footerStyle.Render("Press h for help | q to quit") + "\n")
		return b.String()
	}

	for i, r := range m.rows {
		if r.header {
			b.WriteString(subjectStyle.Render(fmt.Sprintf("%s (%d)", r.subject, r.count)) + "\n")
			continue
		}
		b.WriteString(m.renderTask(r.task, i == m.cursor) + "\n")
	}
	b.WriteString("\n")

	switch m.pending {
	case pendingRemove:
		b.WriteString(confirmStyle.Render("Delete the selected task? (y/n)") + "\n")
	case pendingClear:
		b.WriteString(confirmStyle.Render("Remove all completed tasks? (y/n)") + "\n")
	default:
		b.WriteString(footerStyle.Render("space toggle | d delete | c clear done | h help | q quit") + "\n")
	}
	return b.String()
}

func (m *tuiModel) renderTask(t task.Task, selected bool) string {
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}
	line := fmt.Sprintf("  %s %s  %s %s", check, t.DueDate, priorityBadge(t.Priority), taskLabel(t))

	today := reminder.Today()
	switch {
	case t.Completed:
		line = completedStyle.Render(line)
	case t.DueDate < today:
		line = overdueStyle.Render(line)
	case t.DueDate == today:
		line = dueTodayStyle.Render(line)
	}
	if selected {
		return selectedStyle.Render("›") + line
	}
	return " " + line
}

// taskLabel returns the display text for a task, falling back to the
// description when the subject is empty.
func taskLabel(t task.Task) string {
	if t.Description != "" {
		return t.Description
	}
	if t.Subject != "" {
		return t.Subject
	}
	return "(untitled)"
}

func priorityBadge(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return highStyle.Render("high")
	case task.PriorityLow:
		return lowStyle.Render("low ")
	default:
		return "med "
	}
}

func writeBanner(b *strings.Builder, r *reminder.Report) {
	// nil means no reminders; the banner is hidden entirely.
	if r == nil {
		return
	}
	var parts []string
	if n := r.OverdueCount(); n > 0 {
		parts = append(parts, overdueStyle.Render(fmt.Sprintf("%d overdue", n)))
	}
	if n := r.DueTodayCount(); n > 0 {
		parts = append(parts, dueTodayStyle.Render(fmt.Sprintf("%d due today", n)))
	}
	b.WriteString(bannerStyle.Render("Reminders: "+strings.Join(parts, ", ")) + "\n\n")
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  j/k, arrows  Move between tasks\n")
	b.WriteString("  space, x     Toggle completion\n")
	b.WriteString("  d            Delete selected task (asks first)\n")
	b.WriteString("  c            Remove all completed tasks (asks first)\n")
	b.WriteString("  r, F5        Reload from disk\n")
	b.WriteString("  h, ?         Toggle this help screen\n\n")
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// IsTTY returns true if the writer is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
