package tui

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fchimpan/seg7/internal/display"
	"github.com/fchimpan/seg7/internal/embed"
	"github.com/fchimpan/seg7/internal/surface"
)

const (
	speedStep = 25 * time.Millisecond
	minSpeed  = 25 * time.Millisecond
	maxSpeed  = 2 * time.Second

	maxDigits = 32
)

type Model struct {
	disp  *display.Display
	frame *surface.Frame
	art   *surface.Art
	sched *teaScheduler
	log   *slog.Logger

	w int
	h int

	// Inline text editor, active after "t".
	editing bool
	draft   []rune

	showEmbed bool
	status    string

	viewBuf bytes.Buffer
}

func NewModel(cfg display.Config, log *slog.Logger) (*Model, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	m := &Model{
		frame: surface.NewFrame(),
		art:   surface.NewArt(true),
		sched: &teaScheduler{},
		log:   log,
	}
	d, err := display.New(m.frame, cfg,
		display.WithScheduler(m.sched),
		display.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	m.disp = d
	return m, nil
}

// Display exposes the underlying display.
func (m *Model) Display() *display.Display { return m.disp }

// Close releases the display and its scheduler.
func (m *Model) Close() { m.disp.Destroy() }

func (m *Model) Init() tea.Cmd {
	return m.sched.cmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.w = msg.Width
		m.h = msg.Height
	case tickMsg:
		m.sched.handle(msg)
	case tea.KeyMsg:
		if m.editing {
			m.updateEditor(msg)
			break
		}
		if quit := m.updateKeys(msg); quit {
			m.Close()
			return m, tea.Quit
		}
	}
	return m, m.sched.cmd()
}

func (m *Model) updateKeys(msg tea.KeyMsg) bool {
	st := m.disp.State()
	switch msg.String() {
	case "ctrl+c", "q":
		return true
	case " ":
		m.disp.SetScrolling(!st.Scrolling)
	case "r", "R":
		m.disp.SetRainbowMode(!st.Rainbow)
	case "c", "C":
		m.disp.RandomizeColors()
	case "x", "X":
		m.disp.ClearColors()
	case "+", "=":
		m.setSpeed(st.ScrollSpeed - speedStep)
	case "-", "_":
		m.setSpeed(st.ScrollSpeed + speedStep)
	case "]":
		m.setDigits(st.DigitCount + 1)
	case "[":
		m.setDigits(st.DigitCount - 1)
	case "t", "T":
		m.editing = true
		m.draft = append([]rune(nil), st.Text...)
		m.status = ""
	case "e", "E":
		m.showEmbed = !m.showEmbed
	}
	return false
}

func (m *Model) updateEditor(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEnter:
		m.disp.SetText(string(m.draft))
		m.editing = false
		m.status = "text updated"
	case tea.KeyEsc, tea.KeyCtrlC:
		m.editing = false
		m.status = ""
	case tea.KeyBackspace:
		if len(m.draft) > 0 {
			m.draft = m.draft[:len(m.draft)-1]
		}
	case tea.KeySpace:
		m.draft = append(m.draft, ' ')
	case tea.KeyRunes:
		m.draft = append(m.draft, msg.Runes...)
	}
}

func (m *Model) setSpeed(d time.Duration) {
	d = min(max(d, minSpeed), maxSpeed)
	if err := m.disp.SetScrollSpeed(d); err != nil {
		m.status = err.Error()
	}
}

func (m *Model) setDigits(n int) {
	if n > maxDigits {
		n = maxDigits
	}
	if err := m.disp.SetDigitCount(n); err != nil {
		m.status = "digit count must be at least 1"
		m.log.Debug("digit count rejected", "value", n)
		return
	}
	m.status = ""
}

func (m *Model) View() string {
	m.viewBuf.Reset()
	b := &m.viewBuf

	st := m.disp.State()
	hud := renderHUD(st)
	art := m.art.Render(m.frame.Snapshot())
	info := m.infoLine()

	lines := []string{hud, ""}
	lines = append(lines, strings.Split(art, "\n")...)
	lines = append(lines, "", info)
	if m.showEmbed {
		lines = append(lines, "")
		lines = append(lines, strings.Split(m.embedPanel(st), "\n")...)
	}

	contentW := 0
	for _, l := range lines {
		if w := lipgloss.Width(l); w > contentW {
			contentW = w
		}
	}
	leftPad := ""
	if m.w > contentW {
		leftPad = strings.Repeat(" ", (m.w-contentW)/2)
	}
	if m.h > len(lines) {
		for i := 0; i < (m.h-len(lines))/2; i++ {
			b.WriteString("\n")
		}
	}
	for _, l := range lines {
		b.WriteString(leftPad)
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *Model) infoLine() string {
	if m.editing {
		return styleHudLabel.Render("text: ") +
			styleHudValue.Render(string(m.draft)) +
			styleCursor.Render("█") +
			styleHudDim.Render("  (enter apply, esc cancel)")
	}
	if m.status != "" {
		return styleHudOk.Render(m.status)
	}
	return styleHudDim.Render("space scroll, r rainbow, c random, x clear, +/- speed, [/] digits, t text, e embed, q quit")
}

func (m *Model) embedPanel(st display.State) string {
	code, err := embed.HTML(embed.FromState(st))
	if err != nil {
		return styleError.Render(err.Error())
	}
	return stylePanel.Render(strings.TrimRight(code, "\n"))
}

func renderHUD(st display.State) string {
	sep := styleHudDim.Render("  |  ")

	mode := "static"
	if st.Scrolling {
		mode = "scrolling"
	}
	colors := "default"
	switch {
	case st.Rainbow:
		colors = "rainbow"
	case customColors(st):
		colors = "custom"
	case st.Color != "":
		colors = string(st.Color)
	}

	return strings.Join([]string{
		styleHudLabel.Render("text ") + styleHudValue.Render(fmt.Sprintf("%q", string(st.Text))),
		sep,
		styleHudLabel.Render("digits ") + styleHudValue.Render(fmt.Sprintf("%d", st.DigitCount)),
		sep,
		styleHudLabel.Render("speed ") + styleHudValue.Render(fmt.Sprintf("%dms", st.ScrollSpeed.Milliseconds())),
		sep,
		styleHudOk.Render(mode),
		sep,
		styleHudLabel.Render("colors ") + styleHudValue.Render(colors),
	}, "")
}

func customColors(st display.State) bool {
	for _, m := range st.PerDigit {
		if len(m) > 0 {
			return true
		}
	}
	return false
}

var (
	styleHudLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	styleHudValue = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d0d7de"))
	styleHudOk    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7ee787"))
	styleHudDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
	styleCursor   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffd33d"))
	styleError    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff7b72"))

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#30363d")).
			Foreground(lipgloss.Color("#d0d7de")).
			Padding(0, 1)
)
