package model

import "math"

// BBox is a rectangle in page-local millimetres, with y growing upward from
// the bottom of the log area.
type BBox struct {
	X      float64 `json:"x"` // Left
	Y      float64 `json:"y"` // Bottom
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewBBoxFromEdges creates a bounding box from its left, right, bottom and top edges.
// Edges given in the wrong order are swapped.
func NewBBoxFromEdges(left, right, bottom, top float64) BBox {
	return BBox{
		X:      math.Min(left, right),
		Y:      math.Min(bottom, top),
		Width:  math.Abs(right - left),
		Height: math.Abs(top - bottom),
	}
}

// Right returns the right edge.
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Top returns the top edge.
func (b BBox) Top() float64 {
	return b.Y + b.Height
}
