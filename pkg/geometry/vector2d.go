package geometry

import (
	"fmt"
	"math"
)

// Epsilon Precision constant used for approximate float64 comparisons.
const (
	Epsilon = 1e-9
)

// Vector2D represents a 2D vector or point in cartesian space.
// Fields are public because they are plain data: v := Vector2D{1, 2}
type Vector2D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Zero is the zero vector.
var Zero = Vector2D{}

// NewVector creates a new Vector2D.
func NewVector(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// NewVectorPolar creates a new Vector2D from polar coordinates.
// theta is in radians.
func NewVectorPolar(radius, theta float64) Vector2D {
	x := radius * math.Cos(theta)
	y := radius * math.Sin(theta)

	// Handle standard floating point precision issues near zero
	if math.Abs(x) < Epsilon {
		x = 0
	}
	if math.Abs(y) < Epsilon {
		y = 0
	}

	return Vector2D{X: x, Y: y}
}

// String implements the fmt.Stringer interface.
func (v Vector2D) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// ---------------------------------------------------------------------
// Arithmetic Operations
// Value receivers, new values returned.
// ---------------------------------------------------------------------

// Add adds two vectors and returns the result.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts the other vector from the current vector.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{v.X - other.X, v.Y - other.Y}
}

// MulVec multiplies both vectors component by component.
func (v Vector2D) MulVec(other Vector2D) Vector2D {
	return Vector2D{v.X * other.X, v.Y * other.Y}
}

// DivVec divides both vectors component by component.
func (v Vector2D) DivVec(other Vector2D) Vector2D {
	return Vector2D{v.X / other.X, v.Y / other.Y}
}

// AddScalar adds scalar to both components.
func (v Vector2D) AddScalar(scalar float64) Vector2D {
	return Vector2D{v.X + scalar, v.Y + scalar}
}

// Mul scales the vector by a scalar value.
func (v Vector2D) Mul(scalar float64) Vector2D {
	return Vector2D{v.X * scalar, v.Y * scalar}
}

// Div scales the vector by 1/scalar.
// Division by zero follows IEEE-754 and yields Inf or NaN components.
func (v Vector2D) Div(scalar float64) Vector2D {
	return Vector2D{v.X / scalar, v.Y / scalar}
}

// Neg returns the opposite vector.
func (v Vector2D) Neg() Vector2D {
	return Vector2D{-v.X, -v.Y}
}

// ---------------------------------------------------------------------
// Vector2D Products
// ---------------------------------------------------------------------

// Dot calculates the dot product of two vectors.
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross calculates the 2D scalar cross product (z-component of 3D cross product).
// Useful for determining winding order or signed area.
func (v Vector2D) Cross(other Vector2D) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Dot is the package level form of a.Dot(b).
func Dot(a, b Vector2D) float64 {
	return a.Dot(b)
}

// Cross is the package level form of a.Cross(b).
func Cross(a, b Vector2D) float64 {
	return a.Cross(b)
}

// ---------------------------------------------------------------------
// Magnitude and Normalization
// ---------------------------------------------------------------------

// LenSqr calculates the squared magnitude of the vector.
// This is faster than Len() as it avoids the square root. Use for comparisons.
func (v Vector2D) LenSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len calculates the magnitude (length) of the vector.
func (v Vector2D) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalized returns a unit vector in the same direction.
// Returns the zero vector if the length is not strictly positive.
func (v Vector2D) Normalized() Vector2D {
	l := v.Len()
	if l <= 0 {
		return Vector2D{0, 0}
	}
	return Vector2D{v.X / l, v.Y / l}
}

// Normalize turns v into a unit vector in place. A zero vector is left untouched.
func (v *Vector2D) Normalize() {
	l := v.Len()
	if l <= 0 {
		return
	}
	v.X /= l
	v.Y /= l
}

// SetLength normalizes v in place then scales it to length l.
func (v *Vector2D) SetLength(l float64) {
	v.Normalize()
	v.X *= l
	v.Y *= l
}

// WithLength returns a copy of v scaled to length l.
func (v Vector2D) WithLength(l float64) Vector2D {
	v.SetLength(l)
	return v
}

// ---------------------------------------------------------------------
// Geometric Utilities
// ---------------------------------------------------------------------

// DistanceTo calculates the Euclidean distance to another vector.
func (v Vector2D) DistanceTo(other Vector2D) float64 {
	return other.Sub(v).Len()
}

// DistanceSquaredTo calculates the squared Euclidean distance to another vector.
func (v Vector2D) DistanceSquaredTo(other Vector2D) float64 {
	return other.Sub(v).LenSqr()
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vector2D) float64 {
	return a.DistanceTo(b)
}

// DistanceSqr returns the squared Euclidean distance between a and b.
func DistanceSqr(a, b Vector2D) float64 {
	return a.DistanceSquaredTo(b)
}

// AngleBetween returns the unsigned angle in radians between a and b, in [0, Pi].
// It is 0 when either vector has zero length.
func AngleBetween(a, b Vector2D) float64 {
	magProduct := a.Len() * b.Len()
	if magProduct == 0 {
		return 0
	}
	cosTheta := a.Dot(b) / magProduct
	cosTheta = math.Max(-1, math.Min(1, cosTheta))
	return math.Acos(cosTheta)
}

// Angle returns the angle (in radians) of the vector relative to the X-axis.
// Range: [-Pi, Pi]
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleTo calculates the heading (in radians) from v towards the other point.
func (v Vector2D) AngleTo(other Vector2D) float64 {
	return math.Atan2(other.Y-v.Y, other.X-v.X)
}

// Rotate rotates the vector by angle (in radians) around the origin (0,0).
func (v Vector2D) Rotate(angle float64) Vector2D {
	cosTheta := math.Cos(angle)
	sinTheta := math.Sin(angle)
	return Vector2D{
		X: v.X*cosTheta - v.Y*sinTheta,
		Y: v.X*sinTheta + v.Y*cosTheta,
	}
}

// RotateAround rotates the vector by angle (radians) around a specific center point.
func (v Vector2D) RotateAround(angle float64, center Vector2D) Vector2D {
	return v.Sub(center).Rotate(angle).Add(center)
}

// Lerp (Linear Interpolate) calculates a point between v and target based on t [0, 1].
func (v Vector2D) Lerp(target Vector2D, t float64) Vector2D {
	return v.Add(target.Sub(v).Mul(t))
}

// Project projects vector v onto vector on. Projecting onto a zero vector gives zero.
func (v Vector2D) Project(on Vector2D) Vector2D {
	lenSqr := on.LenSqr()
	if lenSqr == 0 {
		return Vector2D{}
	}
	return on.Mul(v.Dot(on) / lenSqr)
}

// ---------------------------------------------------------------------
// Comparison
// ---------------------------------------------------------------------

// Eq checks if two vectors are approximately equal using the Epsilon constant.
func (v Vector2D) Eq(other Vector2D) bool {
	return math.Abs(v.X-other.X) <= Epsilon && math.Abs(v.Y-other.Y) <= Epsilon
}

// IsZero reports whether both components are exactly zero.
func (v Vector2D) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
