package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"arise/internal/engine"
	"arise/internal/session"
	"arise/internal/ui"
)

type boardModel struct {
	sess *session.Session

	width  int
	height int

	selected int
	lastLog  string
}

func newBoardModel(sess *session.Session) boardModel {
	return boardModel{
		sess:    sess,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.quests())-1 {
				m.selected++
			}
			return m, nil
		case "c", " ":
			quests := m.quests()
			if m.selected < 0 || m.selected >= len(quests) {
				return m, nil
			}
			q := quests[m.selected]
			if q.IsCompleted {
				m.lastLog = "Already done."
				return m, nil
			}
			notes := m.sess.Apply(func(p engine.Player) (engine.Player, []engine.Notification) {
				return engine.CompleteQuest(p, q.ID, time.Now())
			})
			m.lastLog = renderNotes(notes)
			return m, nil
		case "d":
			notes := m.sess.Apply(func(p engine.Player) (engine.Player, []engine.Notification) {
				return engine.CompleteDailyQuest(p, time.Now())
			})
			m.lastLog = renderNotes(notes)
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) quests() []engine.Quest {
	return engine.FilterQuests(m.sess.Player().Quests, engine.QuestFilterAll)
}

func renderNotes(notes []engine.Notification) string {
	if len(notes) == 0 {
		return "Nothing happened."
	}
	parts := make([]string, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, ui.Notify(n))
	}
	return strings.Join(parts, "  ")
}

func (m boardModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := "\n" + m.lastLog

	leftW := 26
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	p := m.sess.Player()
	bar := ui.XPBar(p.CurrentXP, p.RequiredXP, 30)
	head := fmt.Sprintf("%s | %s | Level %d | Rank %s | %s %d/%d",
		ui.Heading(ui.IconSystem, "Arise"), p.Name, p.Level, ui.RankBadge(p.Rank), bar, p.CurrentXP, p.RequiredXP)
	if p.PenaltyActive {
		head += " | " + ui.BadgePenalty
	}
	return head
}

func (m boardModel) renderSidebar() string {
	p := m.sess.Player()
	lines := []string{ui.H2.Render("Stats")}
	for _, st := range engine.AllStats {
		lines = append(lines, fmt.Sprintf("- %-12s %3d", st, p.Stats[st]))
	}
	lines = append(lines, "")
	lines = append(lines, ui.LabelValue("Gold", p.Gold))
	lines = append(lines, ui.LabelValue("Daily XP", p.DailyXP))
	lines = append(lines, ui.LabelValue("Fatigue", p.Fatigue))
	lines = append(lines, "")
	lines = append(lines, ui.H2.Render("Keys"))
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- d: daily quest")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	p := m.sess.Player()
	var out []string

	daily := ui.Warn.Render("pending")
	if p.DailyQuestComplete {
		daily = ui.Good.Render("done")
	}
	out = append(out, ui.H2.Render("Daily Quest")+" "+daily)
	out = append(out, "")
	out = append(out, ui.H2.Render("Quest Log"))

	quests := m.quests()
	if len(quests) == 0 {
		out = append(out, ui.Muted.Render("(empty)"))
	}
	for i, q := range quests {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		line := fmt.Sprintf("%s[%s] %s (%s, %s)", cursor, ui.RankBadge(q.Rank), q.Title, q.Category, ui.QuestStatus(q.IsCompleted))
		if i == m.selected {
			line = ui.SelectedRow.Render(line)
		}
		out = append(out, line)
	}

	out = append(out, "")
	out = append(out, ui.H2.Render("Recent"))
	logs := p.Logs
	if len(logs) > 5 {
		logs = logs[:5]
	}
	for _, l := range logs {
		out = append(out, ui.Muted.Render("- "+l.Message))
	}
	return strings.Join(out, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
