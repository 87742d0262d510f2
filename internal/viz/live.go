package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/rutherford/internal/compute"
	"github.com/san-kum/rutherford/internal/physics"
	"github.com/san-kum/rutherford/internal/sim"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// statsWidth is the right panel; the canvas gets the rest of the
	// terminal on resize.
	statsWidth = 36

	speedHistoryCap = 200
)

type TickMsg time.Time

// Model drives the terminal view: one simulation step per frame tick.
type Model struct {
	s   *sim.Simulation
	fps int

	canvas        *Canvas
	camera        *Camera
	width, height int

	running      bool
	showGraph    bool
	speedHistory []float64
	stepErr      error
}

func NewModel(s *sim.Simulation, fps int) Model {
	if fps <= 0 {
		fps = 60
	}
	return Model{
		s:            s,
		fps:          fps,
		canvas:       NewCanvas(defaultWidth, defaultHeight),
		camera:       NewCamera(),
		width:        defaultWidth,
		height:       defaultHeight,
		running:      true,
		speedHistory: make([]float64, 0, speedHistoryCap),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "1":
			m.s.Insert(physics.Electron, nil)
		case "2":
			m.s.Insert(physics.Proton, nil)
		case "3":
			m.s.Insert(physics.Neutron, nil)
		case "up":
			m.camera.RotateX(0.1)
		case "down":
			m.camera.RotateX(-0.1)
		case "left":
			m.camera.RotateY(-0.1)
		case "right":
			m.camera.RotateY(0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "g":
			m.showGraph = !m.showGraph
		}
	case tea.WindowSizeMsg:
		w := msg.Width - statsWidth - 4
		h := msg.Height - 2
		if w < 20 {
			w = 20
		}
		if h < 10 {
			h = 10
		}
		m.width, m.height = w, h
		m.canvas = NewCanvas(w, h)
	case TickMsg:
		if m.running {
			if err := m.s.Step(); err != nil {
				m.stepErr = err
				m.running = false
			}
			m.speedHistory = append(m.speedHistory, float64(m.s.MeanSpeed()))
			if len(m.speedHistory) > speedHistoryCap {
				m.speedHistory = m.speedHistory[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// draw renders the scene onto the braille canvas: spawn-bounds cube,
// trails, then particles on top.
func (m *Model) draw() {
	m.canvas.Clear()
	sw, sh := m.width*2, m.height*4

	m.drawBounds(sw, sh)

	for _, p := range m.s.Particles() {
		for _, tp := range p.Trail() {
			if x, y, ok := m.camera.Project(tp, sw, sh); ok {
				m.canvas.Set(x, y)
			}
		}
	}
	for _, p := range m.s.Particles() {
		x, y, ok := m.camera.Project(p.Pos, sw, sh)
		if !ok {
			continue
		}
		for dy := 0; dy <= 1; dy++ {
			for dx := 0; dx <= 1; dx++ {
				m.canvas.Set(x+dx, y+dy)
			}
		}
	}
}

// drawBounds draws the spawn region as a wireframe cube, a fixed spatial
// anchor while the camera moves.
func (m *Model) drawBounds(sw, sh int) {
	cfg := m.s.Config()
	lo, hi := cfg.SpawnLo, cfg.SpawnHi

	corners := [8]physics.Vec3{}
	for i := 0; i < 8; i++ {
		c := physics.Vec3{X: lo, Y: lo, Z: lo}
		if i&1 != 0 {
			c.X = hi
		}
		if i&2 != 0 {
			c.Y = hi
		}
		if i&4 != 0 {
			c.Z = hi
		}
		corners[i] = c
	}

	edges := [12][2]int{
		{0, 1}, {2, 3}, {4, 5}, {6, 7},
		{0, 2}, {1, 3}, {4, 6}, {5, 7},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, e := range edges {
		x1, y1, ok1 := m.camera.Project(corners[e[0]], sw, sh)
		x2, y2, ok2 := m.camera.Project(corners[e[1]], sw, sh)
		if ok1 && ok2 {
			m.canvas.DrawLine(x1, y1, x2, y2)
		}
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("RUTHERFORD ATOMIC MODEL") + "\n")

	status := "RUNNING"
	if !m.running {
		status = pausedStyle.Render("PAUSED")
	}
	s.WriteString(status + "\n\n")

	if m.stepErr != nil {
		s.WriteString(errStyle.Render(m.stepErr.Error()) + "\n\n")
	}

	counts := m.s.KindCounts()
	s.WriteString(labelStyle.Render("Electrons") + valueStyle.Render(fmt.Sprintf("%d", counts[physics.Electron])) + "\n")
	s.WriteString(labelStyle.Render("Protons") + valueStyle.Render(fmt.Sprintf("%d", counts[physics.Proton])) + "\n")
	s.WriteString(labelStyle.Render("Neutrons") + valueStyle.Render(fmt.Sprintf("%d", counts[physics.Neutron])) + "\n")
	s.WriteString(labelStyle.Render("Tick") + valueStyle.Render(fmt.Sprintf("%d", m.s.Ticks())) + "\n")
	s.WriteString(labelStyle.Render("Mean speed") + valueStyle.Render(fmt.Sprintf("%.3g", m.s.MeanSpeed())) + "\n")

	backend := compute.GetBackend()
	if backend.Available() {
		s.WriteString(labelStyle.Render("Backend") + valueStyle.Render("⚡ "+backend.Name()) + "\n")
	} else {
		s.WriteString(labelStyle.Render("Backend") + valueStyle.Render(backend.Name()) + "\n")
	}

	if m.showGraph && len(m.speedHistory) > 1 {
		chart := asciigraph.Plot(m.speedHistory,
			asciigraph.Height(4), asciigraph.Width(24), asciigraph.Caption("Mean speed"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("───────────────────\n1/2/3:Spawn SP:Pause\n←↑↓→:Rotate +/-:Zoom\nG:Graph Q:Quit"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// RunLive starts the terminal view and blocks until the user quits.
func RunLive(s *sim.Simulation, fps int) error {
	p := tea.NewProgram(NewModel(s, fps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
