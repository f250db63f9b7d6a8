// Package geometry maps pointer positions on a rendered image element into the
// fixed logical resolution.
//
// Two conventions exist. A stretched raster (canonical mode) already has the
// logical size, so a click scales linearly from the rendered box. An untouched
// source (deferred mode) is scaled render -> natural -> logical. Both round once,
// at the end, and neither clamps: a click on the bottom-right edge yields
// (Width, Height).
package geometry

import (
	"fmt"
	"math"

	"github.com/inference-gateway/coordpick/internal/domain"
)

// Click is a pointer position in viewport coordinates
type Click struct {
	X float64 `json:"client_x"`
	Y float64 `json:"client_y"`
}

// Box is the rendered element's bounding box in viewport coordinates
type Box struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Local returns the click relative to the box's top-left corner
func (b Box) Local(c Click) (float64, float64) {
	return c.X - b.Left, c.Y - b.Top
}

func (b Box) laidOut() bool {
	return b.Width > 0 && b.Height > 0
}

// Point is a coordinate in the logical resolution
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String formats the point the way it is copied to the clipboard
func (p Point) String() string {
	return fmt.Sprintf("%d, %d", p.X, p.Y)
}

// MapStretched maps a click on a raster that was stretched to the logical size
func MapStretched(click Click, box Box, logical domain.Size) (Point, error) {
	if !box.laidOut() || !logical.Valid() {
		return Point{}, domain.ErrMappingUnavailable
	}

	localX, localY := box.Local(click)
	return Point{
		X: round(localX / box.Width * float64(logical.Width)),
		Y: round(localY / box.Height * float64(logical.Height)),
	}, nil
}

// MapNatural maps a click on an untouched source through its natural size.
// natural is nil until the source has been probed.
func MapNatural(click Click, box Box, natural *domain.Size, logical domain.Size) (Point, error) {
	if !box.laidOut() || !logical.Valid() || natural == nil || !natural.Valid() {
		return Point{}, domain.ErrMappingUnavailable
	}

	localX, localY := box.Local(click)
	nw, nh := float64(natural.Width), float64(natural.Height)

	naturalX := localX / box.Width * nw
	naturalY := localY / box.Height * nh

	return Point{
		X: round(naturalX / nw * float64(logical.Width)),
		Y: round(naturalY / nh * float64(logical.Height)),
	}, nil
}

// round matches the page's Math.round for the non-negative values clicks produce
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
