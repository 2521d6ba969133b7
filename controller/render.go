package controller

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/roomsim/level"
	"github.com/lixenwraith/roomsim/parameter"
	"github.com/lixenwraith/roomsim/vmath"
)

// MeshSwap substitutes the parts selected by mask with the same-index parts of model
// Substitutes whose mesh slot is empty are skipped; the override table is created on first use
func (c *Controller) MeshSwap(model *level.Model, mask uint32) {
	if c.meshes == nil {
		c.initMeshOverrides()
	}
	for i := 0; i < model.MeshCount && i < len(c.meshes); i++ {
		index := model.MeshStart + i
		if mask&(1<<uint(i)) != 0 && c.env.Level.HasMesh(index) {
			c.meshes[i] = index
		}
	}
}

func (c *Controller) initMeshOverrides() {
	m := c.Anim.Model()
	if m == nil {
		c.meshes = []int{}
		return
	}
	c.meshes = make([]int, m.MeshCount)
	for i := range c.meshes {
		c.meshes[i] = m.MeshStart + i
	}
}

// MeshFor returns the mesh drawn for part, honoring overrides
func (c *Controller) MeshFor(part int) int {
	if c.meshes != nil && part < len(c.meshes) {
		return c.meshes[part]
	}
	return c.Anim.Model().MeshStart + part
}

// Render submits every visible part and, for shadow casters, a blob on the floor below
func (c *Controller) Render(r Renderer) {
	if c.Anim.Model() == nil {
		return
	}
	l := c.env.Level
	e := l.Entity(c.entity)
	e.Rendered = true

	var buf [parameter.MaxJoints]mgl32.Mat4
	for i, joint := range c.Anim.Joints(c.Matrix(), buf[:]) {
		mesh := c.MeshFor(i)
		if !l.HasMesh(mesh) {
			continue
		}
		r.RenderMesh(joint, mesh)
	}

	if e.Shadow {
		info := l.FloorInfo(e.Room, e.X, e.Y, e.Z)
		box := c.Anim.LocalBox()
		center := box.Center()
		half := box.Size().Mul(parameter.ShadowScale / 2)
		footprint := vmath.Box{Min: center.Sub(half), Max: center.Add(half)}
		pos := mgl32.Vec3{float32(e.X), float32(info.Floor) - parameter.ShadowLift, float32(e.Z)}
		r.RenderShadowBlob(pos, footprint, c.Angle[1])
	}
}
