package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"

	"github.com/automoto/highrise/components"
	cfg "github.com/automoto/highrise/config"
	"github.com/automoto/highrise/gamemath"
	"github.com/automoto/highrise/sim"
	"github.com/automoto/highrise/tags"
)

// The view is a tilted overhead projection: the ground plane is rotated by
// the camera yaw and squashed vertically, and elevation lifts things up the
// screen. Everything is drawn back to front.
const (
	depthSquash = 0.72 // vertical squash of the ground plane
	heightLift  = 0.58 // screen lift per world unit of elevation
)

type drawItem struct {
	depth float64
	draw  func(screen *ebiten.Image)
}

// DrawWorld renders the city, zombies, pickups, and the character.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	character := components.Character.Get(playerEntry)

	screen.Fill(color.RGBA{24, 26, 33, 255})

	ppu := cfg.Camera.PixelsPerUnit
	cx := float64(screen.Bounds().Dx()) / 2
	cy := float64(screen.Bounds().Dy()) / 2
	camPos := gamemath.Vec3{X: camera.Position.X, Z: camera.Position.Y}

	project := func(p gamemath.Vec3) (float64, float64, float64) {
		v := p.Sub(camPos).RotateY(-camera.Yaw)
		sx := cx + v.X*ppu
		sy := cy + v.Z*ppu*depthSquash - p.Y*ppu*heightLift
		return sx, sy, v.Z
	}

	var items []drawItem

	reg := character.Sim.Registry()
	for i := 0; i < reg.Len(); i++ {
		st := reg.At(i)
		_, _, depth := project(st.Pos)
		items = append(items, drawItem{depth: depth, draw: structureDrawer(st, project, ppu)})
	}

	tags.Zombie.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		pos := gamemath.Vec3{X: obj.X + obj.W/2, Z: obj.Y + obj.H/2}
		_, _, depth := project(pos)
		items = append(items, drawItem{depth: depth, draw: discDrawer(pos, cfg.Zombie.Radius, colornames.Olivedrab, project, ppu)})
	})

	tags.Pickup.Each(e.World, func(entry *donburi.Entry) {
		pickup := components.Pickup.Get(entry)
		obj := components.Object.Get(entry)
		pos := gamemath.Vec3{X: obj.X + obj.W/2, Y: pickup.BaseY, Z: obj.Y + obj.H/2}
		pos.Y += pickup.BobOffset
		_, _, depth := project(pos)
		items = append(items, drawItem{depth: depth, draw: pickupDrawer(pos, project, ppu)})
	})

	char := character.Sim.Character()
	_, _, charDepth := project(char.Pos)
	items = append(items, drawItem{depth: charDepth, draw: characterDrawer(char, project, ppu)})

	sort.SliceStable(items, func(i, j int) bool { return items[i].depth < items[j].depth })
	for _, item := range items {
		item.draw(screen)
	}

	if cfg.Debug.DrawAnchors {
		drawAnchors(screen, reg, project)
	}
}

func structureDrawer(st *sim.Structure, project func(gamemath.Vec3) (float64, float64, float64), ppu float64) func(*ebiten.Image) {
	return func(screen *ebiten.Image) {
		bx, by, _ := project(st.Pos)
		top := st.Pos
		top.Y = st.Height
		tx, ty, _ := project(top)
		r := float32(st.FootprintRadius * ppu)

		// Taller buildings read lighter so elevation is legible.
		shade := uint8(60 + gamemath.Clamp(st.Height*9, 0, 120))
		wall := color.RGBA{shade / 2, shade / 2, uint8(float64(shade) * 0.62), 255}
		roof := color.RGBA{shade, shade, uint8(gamemath.Clamp(float64(shade)+30, 0, 255)), 255}

		// Footprint, wall slab, roof disc.
		vector.DrawFilledCircle(screen, float32(bx), float32(by), r, color.RGBA{15, 16, 20, 255}, true)
		vector.DrawFilledRect(screen, float32(bx)-r, float32(ty), 2*r, float32(by-ty), wall, true)
		vector.DrawFilledCircle(screen, float32(tx), float32(ty), r, roof, true)
		if st.Climbable {
			ax, ay, _ := project(st.Anchor)
			vector.DrawFilledCircle(screen, float32(ax), float32(ay), 3, colornames.Goldenrod, true)
		}
	}
}

func discDrawer(pos gamemath.Vec3, radius float64, col color.RGBA, project func(gamemath.Vec3) (float64, float64, float64), ppu float64) func(*ebiten.Image) {
	return func(screen *ebiten.Image) {
		sx, sy, _ := project(pos)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(radius*ppu), col, true)
	}
}

func pickupDrawer(pos gamemath.Vec3, project func(gamemath.Vec3) (float64, float64, float64), ppu float64) func(*ebiten.Image) {
	return func(screen *ebiten.Image) {
		ground := pos
		ground.Y = 0
		gx, gy, _ := project(ground)
		sx, sy, _ := project(pos)
		r := float32(cfg.Pickup.Radius * ppu * 0.5)

		if pos.Y > 0.01 {
			vector.DrawFilledCircle(screen, float32(gx), float32(gy), r*0.6, color.RGBA{0, 0, 0, 90}, true)
		}
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), r, colornames.Whitesmoke, true)
		vector.DrawFilledRect(screen, float32(sx)-r*0.6, float32(sy)-1.5, r*1.2, 3, colornames.Crimson, true)
		vector.DrawFilledRect(screen, float32(sx)-1.5, float32(sy)-r*0.6, 3, r*1.2, colornames.Crimson, true)
	}
}

func characterDrawer(char *sim.Character, project func(gamemath.Vec3) (float64, float64, float64), ppu float64) func(*ebiten.Image) {
	return func(screen *ebiten.Image) {
		ground := char.Pos
		ground.Y = 0
		gx, gy, _ := project(ground)
		sx, sy, _ := project(char.Pos)
		r := float32(cfg.Player.BodyRadius * ppu * 1.4)

		// Elevation shadow anchors the character to the ground plane.
		if char.Pos.Y > 0.01 {
			vector.DrawFilledCircle(screen, float32(gx), float32(gy), r*0.8, color.RGBA{0, 0, 0, 110}, true)
		}

		body := colornames.Lightsteelblue
		if char.Mode == sim.ModeClimbing {
			body = colornames.Goldenrod
		}
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), r, body, true)

		// Facing tick.
		fx := sx + math.Cos(char.Yaw)*float64(r)
		fy := sy + math.Sin(char.Yaw)*float64(r)*depthSquash
		vector.DrawFilledCircle(screen, float32(fx), float32(fy), 2.5, colornames.White, true)
	}
}

func drawAnchors(screen *ebiten.Image, reg *sim.Registry, project func(gamemath.Vec3) (float64, float64, float64)) {
	for i := 0; i < reg.Len(); i++ {
		st := reg.At(i)
		if !st.Climbable {
			continue
		}
		ax, ay, _ := project(st.Anchor)
		vector.StrokeCircle(screen, float32(ax), float32(ay), 6, 1, colornames.Yellow, true)
	}
}
