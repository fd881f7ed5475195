package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/loxodrome/internal/scene"
)

const (
	defaultCols = 60
	defaultRows = 24
	panelWidth  = 46
	profileLen  = 48
)

type TickMsg time.Time

// LiveModel plays a scene in the terminal. The timeline loops until quit.
type LiveModel struct {
	scene   *scene.Scene
	camera  Camera
	canvas  *Canvas
	ribbons []lipgloss.Style
	theme   Theme
	fps     int
	t       float64
	running bool
	profile []float64
	frame   scene.Frame
}

// NewLiveModel prepares a live view of s at fps frames per second.
func NewLiveModel(s *scene.Scene, fps int) LiveModel {
	if fps <= 0 {
		fps = 30
	}
	m := LiveModel{
		scene:   s,
		camera:  NewCamera(s.Camera),
		canvas:  NewCanvas(defaultCols, defaultRows),
		ribbons: RibbonStyles(s),
		theme:   CurrentTheme,
		fps:     fps,
		running: true,
		profile: zProfile(s, profileLen),
	}
	m.draw()
	return m
}

func (m LiveModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m LiveModel) Init() tea.Cmd {
	return m.tick()
}

// Update handles keys, resizes and frame ticks.
func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.t = 0
		case "t":
			m.theme = NextTheme(m.theme)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		}
		m.draw()
	case tea.WindowSizeMsg:
		cols, rows := msg.Width-panelWidth-4, msg.Height-2
		if cols > 10 && rows > 5 {
			m.canvas = NewCanvas(cols, rows)
		}
		m.draw()
	case TickMsg:
		if m.running {
			m.advance(1 / float64(m.fps))
		}
		m.draw()
		return m, m.tick()
	}
	return m, nil
}

// advance moves the playhead, looping past the end of the timeline.
func (m *LiveModel) advance(dt float64) {
	m.t += dt
	if d := m.scene.Duration(); d > 0 && m.t > d {
		m.t = math.Mod(m.t, d)
	}
}

func (m *LiveModel) draw() {
	m.frame = m.scene.Frame(m.t)
	cam := m.camera
	cam.Theta = m.frame.Camera.Theta
	RenderFrame(m.canvas, m.frame, cam)
}

func (m LiveModel) View() string {
	st := newStyles(m.theme)
	canvasView := st.canvas.Render(m.canvas.Render(m.ribbons))

	status := "PLAYING"
	if !m.running {
		status = "PAUSED"
	}

	var s strings.Builder
	s.WriteString(st.title.Render("LOXODROME") + "\n")
	s.WriteString(st.status.Render(status) + "\n\n")
	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	d := m.scene.Duration()
	row("Time", fmt.Sprintf("%.2fs / %.1fs", m.t, d))
	progress := 1.0
	if d > 0 {
		progress = m.t / d
	}
	row("Phase", m.frame.State.Phase.String())
	row("Scale", fmt.Sprintf("%.3f", m.frame.Scale))
	row("Theta", fmt.Sprintf("%.1f°", m.frame.Camera.Theta*180/math.Pi))
	row("Ribbons", fmt.Sprintf("%d / %d", len(m.frame.Ribbons), len(m.scene.Ribbons)))
	row("Turns", fmt.Sprintf("%g", m.scene.Params.Turns))
	s.WriteString("\n" + ProgressBar(progress, 30) + "\n")

	if len(m.profile) > 1 {
		chart := asciigraph.Plot(m.profile,
			asciigraph.Height(5),
			asciigraph.Width(30),
			asciigraph.Caption("ribbon 0: z over t"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}
	s.WriteString(st.help.Render("SP:Pause R:Restart T:Theme +/-:Zoom Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.panel.Render(s.String()))
}

// zProfile downsamples ribbon 0's height to n values.
func zProfile(s *scene.Scene, n int) []float64 {
	if len(s.Ribbons) == 0 || n < 2 {
		return nil
	}
	pts := s.Ribbons[0].Points
	if len(pts) < n {
		n = len(pts)
	}
	if n < 2 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = pts[i*(len(pts)-1)/(n-1)].Z
	}
	return out
}
