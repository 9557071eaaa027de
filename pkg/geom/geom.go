// Package geom provides the minimal 2D geometry used by the tile layout
// engine: points and axis-aligned rectangles with float64 coordinates.
//
// The package is intentionally tiny. It exists so that the core engine in
// pkg/tiles can compute and compare screen rectangles without depending on
// any particular UI toolkit's geometry types. Hosts convert to and from
// their own types at the interface boundary.
//
// Coordinates follow screen conventions: X grows rightward, Y grows
// downward. A Rect is defined by its Min (top-left) and Max (bottom-right)
// corners and is considered empty when either dimension is non-positive.
package geom

import "math"

// Pos is a point in screen space.
type Pos struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// P is shorthand for constructing a Pos.
func P(x, y float64) Pos { return Pos{X: x, Y: y} }

// Add returns p translated by o.
func (p Pos) Add(o Pos) Pos { return Pos{X: p.X + o.X, Y: p.Y + o.Y} }

// Sub returns p translated by -o.
func (p Pos) Sub(o Pos) Pos { return Pos{X: p.X - o.X, Y: p.Y - o.Y} }

// DistanceSq returns the squared Euclidean distance between p and o.
// Squared distance is sufficient for nearest-candidate comparisons and
// avoids the sqrt.
func (p Pos) DistanceSq(o Pos) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between p and o.
func (p Pos) Distance(o Pos) float64 { return math.Sqrt(p.DistanceSq(o)) }

// Lerp linearly interpolates between p and o. t=0 yields p, t=1 yields o.
func (p Pos) Lerp(o Pos, t float64) Pos {
	return Pos{
		X: p.X + (o.X-p.X)*t,
		Y: p.Y + (o.Y-p.Y)*t,
	}
}

// Rect is an axis-aligned rectangle given by two corners.
// Min is the top-left corner, Max the bottom-right.
type Rect struct {
	Min Pos `json:"min" toml:"min"`
	Max Pos `json:"max" toml:"max"`
}

// NewRect constructs a rectangle from the top-left corner and a size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Min: Pos{X: x, Y: y}, Max: Pos{X: x + w, Y: y + h}}
}

// FromMinMax constructs a rectangle from two corners.
func FromMinMax(min, max Pos) Rect { return Rect{Min: min, Max: max} }

// FromMinSize constructs a rectangle from the top-left corner and a size.
func FromMinSize(min Pos, w, h float64) Rect {
	return Rect{Min: min, Max: Pos{X: min.X + w, Y: min.Y + h}}
}

// FromCenterSize constructs a rectangle centered on c.
func FromCenterSize(c Pos, w, h float64) Rect {
	return Rect{
		Min: Pos{X: c.X - w/2, Y: c.Y - h/2},
		Max: Pos{X: c.X + w/2, Y: c.Y + h/2},
	}
}

// Width returns the horizontal extent. Negative for inverted rectangles.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent. Negative for inverted rectangles.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Pos {
	return Pos{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// IsEmpty reports whether the rectangle has non-positive width or height.
func (r Rect) IsEmpty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Contains reports whether p lies inside the rectangle.
// Points on the Min edges are inside, points on the Max edges are not,
// so adjacent tiles never both claim a shared boundary point.
func (r Rect) Contains(p Pos) bool {
	return r.Min.X <= p.X && p.X < r.Max.X && r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// Intersects reports whether r and o overlap with positive area.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X &&
		r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

// Shrink insets all four edges by d. The result may be inverted if d is
// larger than half the smaller dimension.
func (r Rect) Shrink(d float64) Rect {
	return Rect{
		Min: Pos{X: r.Min.X + d, Y: r.Min.Y + d},
		Max: Pos{X: r.Max.X - d, Y: r.Max.Y - d},
	}
}

// Expand outsets all four edges by d.
func (r Rect) Expand(d float64) Rect { return r.Shrink(-d) }

// SplitLeftRightAtX splits the rectangle at the vertical line x.
func (r Rect) SplitLeftRightAtX(x float64) (left, right Rect) {
	left = Rect{Min: r.Min, Max: Pos{X: x, Y: r.Max.Y}}
	right = Rect{Min: Pos{X: x, Y: r.Min.Y}, Max: r.Max}
	return left, right
}

// SplitLeftRightAtFraction splits the rectangle at the given horizontal
// fraction in [0, 1].
func (r Rect) SplitLeftRightAtFraction(t float64) (left, right Rect) {
	return r.SplitLeftRightAtX(r.Min.X + r.Width()*t)
}

// SplitTopBottomAtY splits the rectangle at the horizontal line y.
func (r Rect) SplitTopBottomAtY(y float64) (top, bottom Rect) {
	top = Rect{Min: r.Min, Max: Pos{X: r.Max.X, Y: y}}
	bottom = Rect{Min: Pos{X: r.Min.X, Y: y}, Max: r.Max}
	return top, bottom
}

// SplitTopBottomAtFraction splits the rectangle at the given vertical
// fraction in [0, 1].
func (r Rect) SplitTopBottomAtFraction(t float64) (top, bottom Rect) {
	return r.SplitTopBottomAtY(r.Min.Y + r.Height()*t)
}

// Lerp interpolates both corners towards o.
func (r Rect) Lerp(o Rect, t float64) Rect {
	return Rect{Min: r.Min.Lerp(o.Min, t), Max: r.Max.Lerp(o.Max, t)}
}

// Clamp limits p to lie inside the rectangle.
func (r Rect) Clamp(p Pos) Pos {
	return Pos{
		X: math.Min(math.Max(p.X, r.Min.X), r.Max.X),
		Y: math.Min(math.Max(p.Y, r.Min.Y), r.Max.Y),
	}
}
