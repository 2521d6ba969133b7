package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/roomsim/constant"
	"github.com/lixenwraith/roomsim/engine"
	"github.com/lixenwraith/roomsim/level"
	"github.com/lixenwraith/roomsim/status"
	"github.com/lixenwraith/roomsim/vmath"
)

// Terminal cells are roughly twice as tall as wide
const (
	unitsPerColumn = 128
	unitsPerRow    = 256
	headerRows     = 1
)

var (
	styleFloor  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePortal = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleStack  = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleMesh   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleShadow = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	styleCamera = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// view draws a top-down projection of the scene centered on the camera target
// It implements controller.Renderer; meshes become the first letter of their name
type view struct {
	screen tcell.Screen
	level  *level.Level

	width, height int
	center        mgl32.Vec3
	meshes        int
}

func newView(screen tcell.Screen, l *level.Level) *view {
	return &view{screen: screen, level: l}
}

func (v *view) project(p mgl32.Vec3) (x, y int, ok bool) {
	x = int((p[0]-v.center[0])/unitsPerColumn) + v.width/2
	y = int((p[2]-v.center[2])/unitsPerRow) + (v.height+headerRows)/2
	return x, y, x >= 0 && x < v.width && y >= headerRows && y < v.height
}

func (v *view) unproject(x, y int) (wx, wz int) {
	wx = int(v.center[0]) + (x-v.width/2)*unitsPerColumn + unitsPerColumn/2
	wz = int(v.center[2]) + (y-(v.height+headerRows)/2)*unitsPerRow + unitsPerRow/2
	return wx, wz
}

func (v *view) RenderMesh(joint mgl32.Mat4, mesh int) {
	x, y, ok := v.project(joint.Col(3).Vec3())
	if !ok {
		return
	}
	r := '*'
	if name := v.level.Meshes[mesh].Name; name != "" {
		r = rune(name[0])
	}
	v.screen.SetContent(x, y, r, nil, styleMesh)
	v.meshes++
}

// RenderShadowBlob marks the footprint corners under the entity without covering meshes
func (v *view) RenderShadowBlob(pos mgl32.Vec3, footprint vmath.Box, yaw float32) {
	rot := mgl32.HomogRotate3DY(yaw)
	for _, c := range [...]mgl32.Vec3{
		{footprint.Min[0], 0, footprint.Min[2]},
		{footprint.Max[0], 0, footprint.Max[2]},
	} {
		x, y, ok := v.project(pos.Add(rot.Mul4x1(c.Vec4(0)).Vec3()))
		if !ok {
			continue
		}
		if r, _, _, _ := v.screen.GetContent(x, y); r == '*' || (r >= 'a' && r <= 'z') {
			continue
		}
		v.screen.SetContent(x, y, '.', nil, styleShadow)
	}
}

// draw renders one frame: rooms, actors, camera markers, then the header and stats
func (v *view) draw(scene *engine.Scene, stats *status.Registry, paused bool) {
	v.width, v.height = v.screen.Size()
	v.meshes = 0
	if scene.Rig != nil {
		v.center = scene.Rig.Target
	}

	v.screen.Clear()
	v.drawRooms()
	scene.Render(v)

	if rig := scene.Rig; rig != nil {
		if x, y, ok := v.project(rig.Pos); ok {
			v.screen.SetContent(x, y, 'C', nil, styleCamera)
		}
		if x, y, ok := v.project(rig.Target); ok {
			v.screen.SetContent(x, y, '+', nil, styleCamera)
		}
	}

	header := fmt.Sprintf("tick %d  x%.1f  meshes %d  secrets %b", scene.Tick(), scene.TimeScale, v.meshes, scene.Level.Secrets)
	if paused {
		header += "  [paused]"
	}
	if scene.Rig != nil {
		header += fmt.Sprintf("  room %d", scene.Rig.Room)
	}
	v.text(0, 0, header+"  q quit  p pause  s/f speed  space trigger  hjkl orbit")

	lines := stats.Lines()
	for i, line := range lines {
		y := v.height - len(lines) + i
		if y <= headerRows {
			continue
		}
		v.text(0, y, line)
	}

	v.screen.Show()
}

// drawRooms paints each visible cell from the first room whose footprint contains it
func (v *view) drawRooms() {
	for y := headerRows; y < v.height; y++ {
		for x := 0; x < v.width; x++ {
			wx, wz := v.unproject(x, y)
			for ri := range v.level.Rooms {
				r := &v.level.Rooms[ri]
				if wx < r.X || wz < r.Z || wx >= r.X+r.XSectors*vmath.CellSize || wz >= r.Z+r.ZSectors*vmath.CellSize {
					continue
				}
				s, _, _ := v.level.Sector(ri, wx, wz)
				ch, style := '·', styleFloor
				switch {
				case s.Floor == constant.WallMarker:
					ch, style = '#', styleWall
				case s.RoomNext != level.NoRoom:
					ch, style = ':', stylePortal
				case s.RoomAbove != level.NoRoom:
					ch, style = '^', styleStack
				}
				v.screen.SetContent(x, y, ch, nil, style)
				break
			}
		}
	}
}

func (v *view) text(x, y int, s string) {
	for _, r := range s {
		if x >= v.width {
			return
		}
		v.screen.SetContent(x, y, r, nil, styleText)
		x++
	}
}
