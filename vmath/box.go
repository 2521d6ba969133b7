package vmath

import "github.com/go-gl/mathgl/mgl32"

// Box is an axis-aligned bounding box
type Box struct {
	Min, Max mgl32.Vec3
}

// Center returns the box midpoint
func (b Box) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the box extents
func (b Box) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Translate offsets both corners
func (b Box) Translate(v mgl32.Vec3) Box {
	return Box{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}

// Lerp interpolates both corners toward o
func (b Box) Lerp(o Box, t float32) Box {
	return Box{Min: Lerp(b.Min, o.Min, t), Max: Lerp(b.Max, o.Max, t)}
}

// Contains reports whether p lies inside the box, boundaries included
func (b Box) Contains(p mgl32.Vec3) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1] &&
		p[2] >= b.Min[2] && p[2] <= b.Max[2]
}

// RotateQuarter rotates the box around Y by n quarter turns in the RotateY sense
func (b Box) RotateQuarter(n int) Box {
	mn, mx := b.Min, b.Max
	switch n & 3 {
	case 1:
		return Box{
			Min: mgl32.Vec3{mn[2], mn[1], -mx[0]},
			Max: mgl32.Vec3{mx[2], mx[1], -mn[0]},
		}
	case 2:
		return Box{
			Min: mgl32.Vec3{-mx[0], mn[1], -mx[2]},
			Max: mgl32.Vec3{-mn[0], mx[1], -mn[2]},
		}
	case 3:
		return Box{
			Min: mgl32.Vec3{-mx[2], mn[1], mn[0]},
			Max: mgl32.Vec3{-mn[2], mx[1], mx[0]},
		}
	}
	return b
}
