package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/rutherford/internal/audio"
	"github.com/san-kum/rutherford/internal/config"
	"github.com/san-kum/rutherford/internal/physics"
	"github.com/san-kum/rutherford/internal/sim"
)

// Theme colors (monochrome background, per-kind particle accents)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColGrid    = rl.NewColor(30, 30, 30, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)

	ColElectron = rl.NewColor(80, 170, 255, 255)
	ColProton   = rl.NewColor(255, 90, 80, 255)
	ColNeutron  = rl.NewColor(180, 180, 180, 255)
	ColTrail    = rl.NewColor(0, 228, 48, 90)
)

// App is the render/input shell around the simulation. It owns the free-fly
// camera and decides when to call Insert (key events) and Step (once per
// frame).
type App struct {
	cfg *config.Config
	sim *sim.Simulation

	yaw      float32
	pitch    float32
	position rl.Vector3

	grabbed bool
	paused  bool

	audio *audio.Processor
}

func NewApp(cfg *config.Config, s *sim.Simulation, proc *audio.Processor) *App {
	return &App{
		cfg: cfg,
		sim: s,
		// Default pose looks down the grid from above.
		yaw:      1.18,
		pitch:    0,
		position: rl.NewVector3(0, 50, 0),
		grabbed:  true,
		audio:    proc,
	}
}

func initWindow(cfg *config.Config) {
	if cfg.Window.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
	}
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// Run opens the window and blocks in the update-draw loop until quit.
func Run(cfg *config.Config, s *sim.Simulation, proc *audio.Processor) {
	initWindow(cfg)
	defer rl.CloseWindow()

	app := NewApp(cfg, s, proc)
	rl.DisableCursor()
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if a.quitRequested() {
			return
		}
		a.Update()
		a.Draw()
	}
}

func (a *App) quitRequested() bool {
	return rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape)
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyTab) {
		a.grabbed = !a.grabbed
		if a.grabbed {
			rl.DisableCursor()
		} else {
			rl.EnableCursor()
		}
	}
	if rl.IsKeyPressed(rl.KeySpace) && rl.IsKeyDown(rl.KeyLeftShift) {
		// Shift+Space pauses; plain Space is reserved for flying up.
		a.paused = !a.paused
	}
	if rl.IsKeyPressed(rl.KeyP) {
		a.paused = !a.paused
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.reset()
	}

	// Discrete spawn keys: one particle per press.
	if rl.IsKeyPressed(rl.KeyOne) {
		a.sim.Insert(physics.Electron, nil)
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		a.sim.Insert(physics.Proton, nil)
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		a.sim.Insert(physics.Neutron, nil)
	}

	a.updateCamera()

	if !a.paused {
		if err := a.sim.Step(); err != nil {
			// Degenerate states must surface, not stream NaNs.
			fmt.Printf("step failed: %v\n", err)
			a.paused = true
		}
	}

	if a.audio != nil {
		a.audio.SetSpeed(float64(a.sim.MeanSpeed()))
	}
}

// reset rebuilds the simulation from the configured scene. Scene entries
// with random positions re-roll; the camera pose is kept.
func (a *App) reset() {
	spawns, err := a.cfg.SceneSpawns()
	if err != nil {
		fmt.Printf("reset failed: %v\n", err)
		return
	}
	a.sim = sim.New(a.cfg.SimConfig(), spawns)
	a.paused = false
}

// updateCamera applies mouse look and WASD/Space/Ctrl flight. Look speed is
// scaled by frame time; the physics step is not.
func (a *App) updateCamera() {
	delta := rl.GetFrameTime()

	if a.grabbed {
		mouse := rl.GetMouseDelta()
		a.yaw += mouse.X * delta * a.cfg.Controls.LookSpeed
		a.pitch -= mouse.Y * delta * a.cfg.Controls.LookSpeed

		if a.pitch > 1.5 {
			a.pitch = 1.5
		}
		if a.pitch < -1.5 {
			a.pitch = -1.5
		}
	}

	front := a.front()
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(front, rl.NewVector3(0, 1, 0)))
	speed := a.cfg.Controls.MoveSpeed

	if rl.IsKeyDown(rl.KeyW) {
		a.position = rl.Vector3Add(a.position, rl.Vector3Scale(front, speed))
	}
	if rl.IsKeyDown(rl.KeyS) {
		a.position = rl.Vector3Subtract(a.position, rl.Vector3Scale(front, speed))
	}
	if rl.IsKeyDown(rl.KeyA) {
		a.position = rl.Vector3Subtract(a.position, rl.Vector3Scale(right, speed))
	}
	if rl.IsKeyDown(rl.KeyD) {
		a.position = rl.Vector3Add(a.position, rl.Vector3Scale(right, speed))
	}
	if rl.IsKeyDown(rl.KeySpace) {
		a.position.Y += speed
	}
	if rl.IsKeyDown(rl.KeyLeftControl) {
		a.position.Y -= speed
	}
}

func (a *App) front() rl.Vector3 {
	yaw := float64(a.yaw)
	pitch := float64(a.pitch)
	return rl.Vector3Normalize(rl.NewVector3(
		float32(math.Cos(yaw)*math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw)*math.Cos(pitch)),
	))
}

func (a *App) camera() rl.Camera3D {
	front := a.front()
	return rl.NewCamera3D(
		a.position,
		rl.Vector3Add(a.position, front),
		rl.NewVector3(0, 1, 0),
		45.0,
		rl.CameraPerspective,
	)
}
