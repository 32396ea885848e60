package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sahayakai/sahayak/internal/video"
)

// TUI forwards updates into the running program. It implements ui.UI.
type TUI struct {
	program *tea.Program
}

func NewTUI(p *tea.Program) *TUI {
	return &TUI{program: p}
}

func (t *TUI) UpdateStatus(status string) {
	t.program.Send(StatusMsg(status))
}

func (t *TUI) SetText(text string) {
	t.program.Send(TextMsg(text))
}

func (t *TUI) SetImage(uri string) {
	t.program.Send(ImageMsg(uri))
}

func (t *TUI) SetImageError(reason string) {
	t.program.Send(ImageErrMsg(reason))
}

func (t *TUI) SetVideos(suggestions []video.Suggestion) {
	t.program.Send(VideosMsg(suggestions))
}

func (t *TUI) Log(msg string) {
	t.program.Send(LogMsg(msg))
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5A56E0")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB454"))
)

type Model struct {
	Title      string
	Status     string
	Text       string
	ImageURI   string
	ImageError string
	Videos     []video.Suggestion
	Log        []string
	Streaming  bool
	Spinner    spinner.Model
	Viewport   viewport.Model
	Quitting   bool
	Ready      bool
	Width      int
	Height     int
}

type TextMsg string
type StatusMsg string
type ImageMsg string
type ImageErrMsg string
type VideosMsg []video.Suggestion
type LogMsg string

func NewModel(title string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return Model{
		Title:     title,
		Status:    "Generating...",
		Streaming: true,
		Spinner:   s,
	}
}

func (m Model) Init() tea.Cmd {
	return m.Spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			m.Quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		if !m.Ready {
			m.Viewport = viewport.New(msg.Width, msg.Height-8)
			m.Ready = true
		} else {
			m.Viewport.Width = msg.Width
			m.Viewport.Height = msg.Height - 8
		}
		m.Viewport.SetContent(m.content())

	case TextMsg:
		m.Text = string(msg)
		m.Viewport.SetContent(m.content())
		m.Viewport.GotoBottom()

	case StatusMsg:
		m.Status = string(msg)
		if m.Status == "Done" || strings.HasPrefix(m.Status, "Generation failed") {
			m.Streaming = false
		}

	case ImageMsg:
		m.ImageURI = string(msg)
		m.Viewport.SetContent(m.content())

	case ImageErrMsg:
		m.ImageError = string(msg)
		m.Viewport.SetContent(m.content())

	case VideosMsg:
		m.Videos = msg
		m.Viewport.SetContent(m.content())

	case LogMsg:
		m.Log = append(m.Log, string(msg))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// content assembles the scrollable body: streamed text first, then the
// side-asset sections as they settle.
func (m Model) content() string {
	var sb strings.Builder
	sb.WriteString(m.Text)

	if m.ImageURI != "" {
		sb.WriteString("\n\n")
		sb.WriteString(sectionStyle.Render("Visual Aid"))
		sb.WriteString(fmt.Sprintf("\n  generated image (%d bytes, data URI)", len(m.ImageURI)))
	}
	if m.ImageError != "" {
		sb.WriteString("\n\n")
		sb.WriteString(sectionStyle.Render("Visual Aid"))
		sb.WriteString("\n  ")
		sb.WriteString(errorStyle.Render(m.ImageError))
	}
	if len(m.Videos) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(sectionStyle.Render("Related Videos"))
		for _, v := range m.Videos {
			sb.WriteString(fmt.Sprintf("\n  - %s\n    %s", v.Title, v.URL))
		}
	}

	return sb.String()
}

func (m Model) View() string {
	if !m.Ready {
		return "\n  Initializing..."
	}

	header := titleStyle.Render(" " + m.Title + " ")
	status := statusStyle.Render(" " + m.Status + " ")
	if m.Streaming {
		status = m.Spinner.View() + status
	}

	view := fmt.Sprintf("%s %s\n\n%s", header, status, m.Viewport.View())

	if m.Quitting {
		return view + "\n  Quitting...\n"
	}

	return view
}
