package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/rutherford/internal/physics"
)

const particleRadius = 2.0

func colorFor(kind physics.Kind) rl.Color {
	switch kind {
	case physics.Electron:
		return ColElectron
	case physics.Proton:
		return ColProton
	default:
		return ColNeutron
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawScene()
	a.drawHUD()

	rl.EndDrawing()
}

func (a *App) drawScene() {
	cam := a.camera()
	rl.BeginMode3D(cam)

	rl.DrawGrid(200, 10)

	for _, p := range a.sim.Particles() {
		pos := rl.NewVector3(p.Pos.X, p.Pos.Y, p.Pos.Z)
		rl.DrawSphere(pos, particleRadius, colorFor(p.Kind))

		if trail := p.Trail(); trail != nil {
			a.drawTrail(trail)
		}
	}

	rl.EndMode3D()
}

func (a *App) drawTrail(trail []physics.Vec3) {
	for i := 1; i < len(trail); i++ {
		from := rl.NewVector3(trail[i-1].X, trail[i-1].Y, trail[i-1].Z)
		to := rl.NewVector3(trail[i].X, trail[i].Y, trail[i].Z)
		rl.DrawLine3D(from, to, ColTrail)
	}
}

func (a *App) drawHUD() {
	h := int32(rl.GetScreenHeight())
	w := int32(rl.GetScreenWidth())

	rl.DrawText(a.cfg.Window.Title, 30, 30, 24, ColSelect)

	counts := a.sim.KindCounts()
	summary := fmt.Sprintf("e %d  p %d  n %d  tick %d",
		counts[physics.Electron], counts[physics.Proton], counts[physics.Neutron], a.sim.Ticks())
	rl.DrawText(summary, 30, 64, 16, ColText)

	if a.paused {
		rl.DrawText("PAUSED", w-130, 30, 16, ColTextDim)
	}

	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 30, h-30, 14, ColTextDim)
	rl.DrawText("[1/2/3] SPAWN e/p/n  [WASD+SPACE/CTRL] FLY  [TAB] CURSOR  [P] PAUSE  [R] RESET  [Q] QUIT",
		w-700, h-30, 14, ColTextDim)
}
