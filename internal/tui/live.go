// Package tui provides the interactive terminal player: the scripted scene
// advancing at its native frame rate, with the parameter readouts and a
// rolling output-voltage chart beside the canvas.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/voltlab/electroanim/internal/config"
	"github.com/voltlab/electroanim/internal/export"
	"github.com/voltlab/electroanim/internal/scenes"
	"github.com/voltlab/electroanim/internal/viz"
)

const historyCapacity = 600

type TickMsg time.Time

// Model drives one production frame-by-frame under bubbletea.
type Model struct {
	prod     *scenes.Production
	cfg      *config.Config
	registry *scenes.Registry

	running   bool
	finished  bool
	history   []float64
	recording bool
	gifSink   *export.GIFSink
	gifPath   string
	showHelp  bool
	err       error
}

// NewModel builds the player around an already constructed production. The
// registry and config are kept so the scene can be rebuilt on reset.
func NewModel(prod *scenes.Production, reg *scenes.Registry, cfg *config.Config) Model {
	return Model{
		prod:     prod,
		cfg:      cfg,
		registry: reg,
		running:  true,
		history:  make([]float64, 0, historyCapacity),
		gifPath:  "render.gif",
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.prod.Director.FPS()), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "g":
			if m.recording {
				m.err = m.gifSink.Save(m.gifPath)
				m.recording = false
				m.gifSink = nil
			} else {
				m.recording = true
				m.gifSink = export.NewGIFSink(m.prod.Director.FPS())
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running && !m.finished {
			if !m.prod.Director.Advance() {
				m.finished = true
				m.running = false
			}
			m.observe()
		}
		return m, m.tick()
	}
	return m, nil
}

// observe renders the current frame, records the output voltage and feeds
// the GIF sink when recording.
func (m *Model) observe() {
	f, err := m.prod.Director.Frame()
	if err != nil {
		m.err = err
		m.running = false
		return
	}
	vals := m.prod.Snapshot()
	for _, key := range []string{"vout", "vdd"} {
		if v, ok := vals[key]; ok {
			m.history = append(m.history, v)
			break
		}
	}
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
	if m.recording {
		if err := m.gifSink.WriteFrame(f); err != nil {
			m.err = err
			m.recording = false
			m.gifSink = nil
		}
	}
}

// reset rebuilds the production from its config, restarting the script.
func (m *Model) reset() {
	prod, err := m.registry.Get(m.prod.Name, m.cfg)
	if err != nil {
		m.err = err
		return
	}
	m.prod = prod
	m.finished = false
	m.running = true
	m.history = m.history[:0]
	m.err = nil
}

func (m Model) View() string {
	f, err := m.prod.Director.Frame()
	if err != nil {
		return "render error: " + err.Error() + "\n"
	}
	canvasView := viz.CanvasStyle.Render(f.Canvas.String())

	var s strings.Builder
	s.WriteString(viz.HeaderStyle.Render(strings.ToUpper(m.prod.Name)) + "\n")
	s.WriteString(m.status() + "\n\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("output voltage"))
		s.WriteString(viz.GraphStyle.Render(chart) + "\n\n")
	}

	d := m.prod.Director
	s.WriteString(viz.LabelStyle.Render("Clock") +
		viz.ValueStyle.Render(fmt.Sprintf("%.2fs / %.2fs", d.Clock(), d.Duration())) + "\n")
	s.WriteString(viz.LabelStyle.Render("Frame") +
		viz.ValueStyle.Render(fmt.Sprintf("%d @ %d fps", f.Index, d.FPS())) + "\n")

	s.WriteString("\nPARAMETERS\n")
	vals := m.prod.Snapshot()
	for _, name := range m.prod.Store.Names() {
		line := fmt.Sprintf("%-8s %12.3f", name, vals[name])
		s.WriteString("  " + viz.LabelStyle.Render(line) + "\n")
	}

	if m.err != nil {
		s.WriteString("\n" + viz.WarnStyle.Render(m.err.Error()) + "\n")
	}
	s.WriteString(viz.HelpStyle.Render("\n─────────────────────\nSP:Pause R:Restart Q:Quit\nG:Record GIF ?:Help"))

	statsView := viz.StatsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

func (m Model) status() string {
	switch {
	case m.finished:
		return "FINISHED"
	case !m.running:
		return "PAUSED"
	case m.recording:
		return fmt.Sprintf("PLAYING (REC %d frames)", m.gifSink.Frames())
	default:
		return "PLAYING"
	}
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume playback    ║
║  R        - Restart the scene        ║
║  G        - Toggle GIF recording     ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
`

// Run plays the production in the terminal until the user quits.
func Run(prod *scenes.Production, reg *scenes.Registry, cfg *config.Config) error {
	p := tea.NewProgram(NewModel(prod, reg, cfg))
	_, err := p.Run()
	return err
}
