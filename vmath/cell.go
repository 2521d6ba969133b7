package vmath

import "github.com/go-gl/mathgl/mgl32"

// CellSize is the edge length of one sector column in world units
const CellSize = 1024

// CellOrigin returns the lower corner of the cell containing v
// Integer division truncates toward zero, matching sector addressing
func CellOrigin(v int) int {
	return v / CellSize * CellSize
}

// CellCenter returns the center coordinate of the cell containing v
func CellCenter(v int) int {
	return CellOrigin(v) + CellSize/2
}

// CellNormal returns the outward normal of the cell face nearest to the column (x, z)
// The cell is split by its diagonals into four triangles, one per face
func CellNormal(x, z int) mgl32.Vec3 {
	x %= CellSize
	z %= CellSize
	if x > CellSize-z {
		if x < z {
			return mgl32.Vec3{0, 0, 1}
		}
		return mgl32.Vec3{1, 0, 0}
	}
	if x < z {
		return mgl32.Vec3{-1, 0, 0}
	}
	return mgl32.Vec3{0, 0, -1}
}

// CellQuadrant returns the quarter-turn index of the face nearest to the column
// 0 faces +Z, 1 faces +X, 2 faces -Z, 3 faces -X
func CellQuadrant(x, z float32) int {
	fx := x / CellSize
	fz := z / CellSize
	fx -= float32(int(fx))
	fz -= float32(int(fz))
	if fx > 1-fz {
		if fx < fz {
			return 0
		}
		return 1
	}
	if fx < fz {
		return 3
	}
	return 2
}
