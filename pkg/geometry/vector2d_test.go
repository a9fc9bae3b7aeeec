package geometry

import (
	"math"
	"testing"
)

// floatEquals is a helper for testing scalar float values with epsilon.
func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func TestNewVectorPolar(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		theta  float64
		want   Vector2D
	}{
		{"Zero radius", 0, 0, Vector2D{0, 0}},
		{"Zero angle (X-axis)", 10, 0, Vector2D{10, 0}},
		{"90 degrees (Y-axis)", 10, math.Pi / 2, Vector2D{0, 10}},
		{"180 degrees (Negative X)", 10, math.Pi, Vector2D{-10, 0}},
		{"45 degrees", math.Sqrt(2), math.Pi / 4, Vector2D{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewVectorPolar(tt.radius, tt.theta)
			if !got.Eq(tt.want) {
				t.Errorf("NewVectorPolar(%v, %v) = %v; want %v", tt.radius, tt.theta, got, tt.want)
			}
		})
	}
}

func TestVector_String(t *testing.T) {
	v := Vector2D{1.234, 5.678}
	want := "(1.23, 5.68)"
	if got := v.String(); got != want {
		t.Errorf("Vector2D.String() = %q; want %q", got, want)
	}
}

func TestVector_Arithmetic(t *testing.T) {
	v1 := Vector2D{1, 2}
	v2 := Vector2D{3, 4}

	tests := []struct {
		name string
		got  Vector2D
		want Vector2D
	}{
		{"Add", v1.Add(v2), Vector2D{4, 6}},
		{"Sub", v1.Sub(v2), Vector2D{-2, -2}},
		{"MulVec", v1.MulVec(v2), Vector2D{3, 8}},
		{"DivVec", v2.DivVec(v1), Vector2D{3, 2}},
		{"AddScalar", v1.AddScalar(1.5), Vector2D{2.5, 3.5}},
		{"Mul", v1.Mul(2), Vector2D{2, 4}},
		{"Div", v1.Div(2), Vector2D{0.5, 1}},
		{"Neg", v1.Neg(), Vector2D{-1, -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Eq(tt.want) {
				t.Errorf("%s = %v; want %v", tt.name, tt.got, tt.want)
			}
		})
	}

	t.Run("DivByZero", func(t *testing.T) {
		got := v1.Div(0)
		if !math.IsInf(got.X, 1) || !math.IsInf(got.Y, 1) {
			t.Errorf("Div(0) should result in +Inf coordinates, got %v", got)
		}
	})
}

func TestVector_Products(t *testing.T) {
	v1 := Vector2D{1, 0}
	v2 := Vector2D{0, 1}
	v3 := Vector2D{1, 1}

	t.Run("Dot", func(t *testing.T) {
		if got := v1.Dot(v2); got != 0 {
			t.Errorf("Dot orthogonal = %v; want 0", got)
		}
		if got := v1.Dot(Vector2D{2, 0}); got != 2 {
			t.Errorf("Dot parallel = %v; want 2", got)
		}
	})

	t.Run("Cross", func(t *testing.T) {
		// Z-component of cross product of X and Y unit vectors is 1
		if got := v1.Cross(v2); got != 1 {
			t.Errorf("Cross X,Y = %v; want 1", got)
		}
		if got := v3.Cross(v3); got != 0 {
			t.Errorf("Cross self = %v; want 0", got)
		}
	})

	t.Run("Symmetry", func(t *testing.T) {
		pairs := [][2]Vector2D{
			{{1, 2}, {3, 4}},
			{{-5, 0.5}, {2, -7}},
			{{0, 0}, {9, 1}},
			{{1e3, -1e-3}, {-2.5, 4.25}},
		}
		for _, p := range pairs {
			a, b := p[0], p[1]
			if Cross(a, b) != -Cross(b, a) {
				t.Errorf("Cross(%v,%v)=%v, -Cross(%v,%v)=%v", a, b, Cross(a, b), b, a, -Cross(b, a))
			}
			if Dot(a, b) != Dot(b, a) {
				t.Errorf("Dot(%v,%v) is not symmetric", a, b)
			}
		}
	})
}

func TestVector_Magnitude(t *testing.T) {
	v := Vector2D{3, 4} // 3-4-5 triangle

	t.Run("Len", func(t *testing.T) {
		if got := v.Len(); got != 5 {
			t.Errorf("Len = %v; want 5", got)
		}
	})

	t.Run("LenSqr", func(t *testing.T) {
		if got := v.LenSqr(); got != 25 {
			t.Errorf("LenSqr = %v; want 25", got)
		}
	})

	t.Run("Normalized", func(t *testing.T) {
		got := v.Normalized()
		want := Vector2D{0.6, 0.8}
		if !got.Eq(want) {
			t.Errorf("Normalized = %v; want %v", got, want)
		}
		if v != (Vector2D{3, 4}) {
			t.Errorf("Normalized must not modify the receiver, got %v", v)
		}
	})

	t.Run("NormalizeInPlace", func(t *testing.T) {
		w := v
		w.Normalize()
		if !floatEquals(w.Len(), 1.0) {
			t.Errorf("Normalize length = %v; want 1", w.Len())
		}
	})

	t.Run("NormalizeZero", func(t *testing.T) {
		zero := Vector2D{0, 0}
		if got := zero.Normalized(); got != zero {
			t.Errorf("Normalized(0,0) = %v; want (0,0)", got)
		}
		zero.Normalize()
		if zero != (Vector2D{}) {
			t.Errorf("Normalize(0,0) = %v; want (0,0)", zero)
		}
	})

	t.Run("NormalizedIsUnit", func(t *testing.T) {
		for _, in := range []Vector2D{{1, 0}, {-3, 7}, {1e-7, 2e-7}, {12345, -6789}, {0.5, 0.5}} {
			if got := in.Normalized().Len(); math.Abs(got-1) > 1e-12 {
				t.Errorf("%v.Normalized().Len() = %v; want 1", in, got)
			}
		}
	})

	t.Run("SetLength", func(t *testing.T) {
		w := Vector2D{10, 0}
		w.SetLength(4)
		if !w.Eq(Vector2D{4, 0}) {
			t.Errorf("SetLength(4) = %v; want (4, 0)", w)
		}
		if got := v.WithLength(10); !got.Eq(Vector2D{6, 8}) {
			t.Errorf("WithLength(10) = %v; want (6, 8)", got)
		}
		z := Vector2D{}
		z.SetLength(3)
		if !z.IsZero() {
			t.Errorf("SetLength on zero vector = %v; want zero", z)
		}
	})
}

func TestVector_Distance(t *testing.T) {
	v1 := Vector2D{1, 1}
	v2 := Vector2D{4, 5} // dx=3, dy=4, dist=5

	if got := v1.DistanceTo(v2); got != 5 {
		t.Errorf("DistanceTo = %v; want 5", got)
	}
	if got := Distance(v2, v1); got != 5 {
		t.Errorf("Distance = %v; want 5", got)
	}
	if got := DistanceSqr(v1, v2); got != 25 {
		t.Errorf("DistanceSqr = %v; want 25", got)
	}
}

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector2D
		want float64
	}{
		{"same", Vector2D{3, 1}, Vector2D{3, 1}, 0},
		{"scaled", Vector2D{1, 1}, Vector2D{5, 5}, 0},
		{"opposite", Vector2D{2, -1}, Vector2D{-2, 1}, math.Pi},
		{"orthogonal", Vector2D{1, 0}, Vector2D{0, 7}, math.Pi / 2},
		{"zero a", Vector2D{}, Vector2D{1, 0}, 0},
		{"zero b", Vector2D{1, 0}, Vector2D{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AngleBetween(tt.a, tt.b); math.Abs(got-tt.want) > 1e-7 {
				t.Errorf("AngleBetween(%v, %v) = %v; want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestVector_Angles(t *testing.T) {
	t.Run("Angle", func(t *testing.T) {
		tests := []struct {
			v    Vector2D
			want float64
		}{
			{Vector2D{1, 0}, 0},
			{Vector2D{0, 1}, math.Pi / 2},
			{Vector2D{-1, 0}, math.Pi},
			{Vector2D{0, -1}, -math.Pi / 2},
		}
		for _, tt := range tests {
			if got := tt.v.Angle(); !floatEquals(got, tt.want) {
				t.Errorf("%v.Angle() = %v; want %v", tt.v, got, tt.want)
			}
		}
	})

	t.Run("AngleTo", func(t *testing.T) {
		v1 := Vector2D{1, 1}
		v2 := Vector2D{1, 2}
		if got := v1.AngleTo(v2); !floatEquals(got, math.Pi/2) {
			t.Errorf("AngleTo = %v; want %v", got, math.Pi/2)
		}
	})
}

func TestVector_Transformations(t *testing.T) {
	t.Run("Rotate", func(t *testing.T) {
		got := Vector2D{1, 0}.Rotate(math.Pi / 2)
		if !got.Eq(Vector2D{0, 1}) {
			t.Errorf("Rotate(90) = %v; want (0, 1)", got)
		}
	})

	t.Run("RotateAround", func(t *testing.T) {
		got := Vector2D{2, 1}.RotateAround(math.Pi/2, Vector2D{1, 1})
		if !got.Eq(Vector2D{1, 2}) {
			t.Errorf("RotateAround = %v; want (1, 2)", got)
		}
	})

	t.Run("Lerp", func(t *testing.T) {
		got := Vector2D{0, 0}.Lerp(Vector2D{10, 10}, 0.5)
		if !got.Eq(Vector2D{5, 5}) {
			t.Errorf("Lerp(0.5) = %v; want (5, 5)", got)
		}
	})

	t.Run("Project", func(t *testing.T) {
		got := Vector2D{3, 3}.Project(Vector2D{5, 0})
		if !got.Eq(Vector2D{3, 0}) {
			t.Errorf("Project = %v; want (3, 0)", got)
		}
		if got := (Vector2D{3, 3}).Project(Vector2D{}); !got.IsZero() {
			t.Errorf("Project on zero = %v; want zero", got)
		}
	})
}

func TestVector_Eq(t *testing.T) {
	v := Vector2D{1, 2}

	if !v.Eq(Vector2D{1, 2}) {
		t.Error("Eq exact match failed")
	}
	if !v.Eq(Vector2D{1 + Epsilon/2, 2 - Epsilon/2}) {
		t.Error("Eq epsilon match failed")
	}
	if v.Eq(Vector2D{1.1, 2}) {
		t.Error("Eq mismatch failed")
	}
}

func BenchmarkAngleBetween(b *testing.B) {
	a := Vector2D{0.3, 0.9}
	c := Vector2D{-0.7, 0.2}
	for i := 0; i < b.N; i++ {
		AngleBetween(a, c)
	}
}
