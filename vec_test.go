package cityplan

import (
	"math"
	"testing"
)

func vecsClose(a, b Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-10 && math.Abs(a.Y-b.Y) < 1e-10
}

func TestVec2_Creation(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"zero", 0, 0},
		{"positive", 3, 4},
		{"negative", -1, -2},
		{"mixed", -5, 10},
		{"fractional", 1.5, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := V2(tt.x, tt.y)
			if v.X != tt.x || v.Y != tt.y {
				t.Errorf("V2(%v, %v) = %v, want (%v, %v)", tt.x, tt.y, v, tt.x, tt.y)
			}
		})
	}
}

func TestVec2_Add(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec2
		expect Vec2
	}{
		{"zero+zero", V2(0, 0), V2(0, 0), V2(0, 0)},
		{"positive", V2(1, 2), V2(3, 4), V2(4, 6)},
		{"negative", V2(-1, -2), V2(-3, -4), V2(-4, -6)},
		{"mixed", V2(1, -2), V2(-3, 4), V2(-2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Add(tt.w)
			if !vecsClose(result, tt.expect) {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.v, tt.w, result, tt.expect)
			}
		})
	}
}

func TestVec2_Sub(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec2
		expect Vec2
	}{
		{"zero-zero", V2(0, 0), V2(0, 0), V2(0, 0)},
		{"positive", V2(5, 7), V2(2, 3), V2(3, 4)},
		{"negative", V2(-1, -2), V2(-3, -4), V2(2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Sub(tt.w)
			if !vecsClose(result, tt.expect) {
				t.Errorf("%v.Sub(%v) = %v, want %v", tt.v, tt.w, result, tt.expect)
			}
		})
	}
}

func TestVec2_MulDivNeg(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec2
		s      float64
		expect Vec2
	}{
		{"zero scalar", V2(1, 2), 0, V2(0, 0)},
		{"positive", V2(1, 2), 3, V2(3, 6)},
		{"negative", V2(1, 2), -2, V2(-2, -4)},
		{"fractional", V2(4, 6), 0.5, V2(2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Mul(tt.s)
			if !vecsClose(result, tt.expect) {
				t.Errorf("%v.Mul(%v) = %v, want %v", tt.v, tt.s, result, tt.expect)
			}
		})
	}

	if got := V2(4, 6).Div(2); !vecsClose(got, V2(2, 3)) {
		t.Errorf("V2(4,6).Div(2) = %v, want (2, 3)", got)
	}
	if got := V2(1, -2).Neg(); !vecsClose(got, V2(-1, 2)) {
		t.Errorf("V2(1,-2).Neg() = %v, want (-1, 2)", got)
	}
}

func TestVec2_Dot(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec2
		expect float64
	}{
		{"orthogonal", V2(1, 0), V2(0, 1), 0},
		{"parallel", V2(1, 0), V2(2, 0), 2},
		{"same", V2(3, 4), V2(3, 4), 25},
		{"opposite", V2(1, 0), V2(-1, 0), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Dot(tt.w)
			if math.Abs(result-tt.expect) > 1e-10 {
				t.Errorf("%v.Dot(%v) = %v, want %v", tt.v, tt.w, result, tt.expect)
			}
		})
	}
}

func TestVec2_Cross(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec2
		expect float64
	}{
		{"parallel", V2(1, 0), V2(2, 0), 0},
		{"orthogonal", V2(1, 0), V2(0, 1), 1},
		{"reverse orthogonal", V2(0, 1), V2(1, 0), -1},
		{"general", V2(3, 4), V2(5, 6), 3*6 - 4*5}, // -2
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Cross(tt.w)
			if math.Abs(result-tt.expect) > 1e-10 {
				t.Errorf("%v.Cross(%v) = %v, want %v", tt.v, tt.w, result, tt.expect)
			}
		})
	}
}

func TestVec2_Length(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec2
		expect float64
	}{
		{"zero", V2(0, 0), 0},
		{"unit x", V2(1, 0), 1},
		{"unit y", V2(0, 1), 1},
		{"3-4-5", V2(3, 4), 5},
		{"negative", V2(-3, -4), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Length()
			if math.Abs(result-tt.expect) > 1e-10 {
				t.Errorf("%v.Length() = %v, want %v", tt.v, result, tt.expect)
			}
			if sq := tt.v.LengthSquared(); math.Abs(sq-tt.expect*tt.expect) > 1e-10 {
				t.Errorf("%v.LengthSquared() = %v, want %v", tt.v, sq, tt.expect*tt.expect)
			}
		})
	}
}

func TestVec2_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec2
		expect Vec2
	}{
		{"zero", V2(0, 0), V2(0, 0)},
		{"unit x", V2(5, 0), V2(1, 0)},
		{"unit y", V2(0, 3), V2(0, 1)},
		{"diagonal", V2(3, 4), V2(0.6, 0.8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Normalize()
			if !vecsClose(result, tt.expect) {
				t.Errorf("%v.Normalize() = %v, want %v", tt.v, result, tt.expect)
			}
		})
	}
}

func TestVec2_Perp(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec2
		expect Vec2
	}{
		{"x axis", V2(1, 0), V2(0, 1)},
		{"y axis", V2(0, 1), V2(-1, 0)},
		{"diagonal", V2(3, 4), V2(-4, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Perp()
			if !vecsClose(result, tt.expect) {
				t.Errorf("%v.Perp() = %v, want %v", tt.v, result, tt.expect)
			}
			// Perp should be orthogonal
			if math.Abs(tt.v.Dot(result)) > 1e-10 {
				t.Errorf("Perp should be orthogonal: %v.Dot(%v) != 0", tt.v, result)
			}
		})
	}
}

func TestVec2_Angle(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec2
		expect float64
	}{
		{"x axis", V2(1, 0), 0},
		{"y axis", V2(0, 1), math.Pi / 2},
		{"negative x", V2(-1, 0), math.Pi},
		{"negative y", V2(0, -1), -math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Angle()
			if math.Abs(result-tt.expect) > 1e-10 {
				t.Errorf("%v.Angle() = %v, want %v", tt.v, result, tt.expect)
			}
		})
	}
}

func TestVec2_AngleBetween(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vec2
		expect float64
	}{
		{"same direction", V2(1, 0), V2(3, 0), 0},
		{"orthogonal", V2(1, 0), V2(0, 5), math.Pi / 2},
		{"opposite", V2(1, 0), V2(-2, 0), math.Pi},
		{"45 deg", V2(1, 0), V2(1, 1), math.Pi / 4},
		{"zero vector", V2(0, 0), V2(1, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.AngleBetween(tt.w)
			if math.Abs(result-tt.expect) > 1e-10 {
				t.Errorf("%v.AngleBetween(%v) = %v, want %v", tt.v, tt.w, result, tt.expect)
			}
		})
	}
}

func TestVec2_PointConversions(t *testing.T) {
	v := V2(3.5, 4.5)
	p := v.ToPoint()
	if p.X != v.X || p.Y != v.Y {
		t.Errorf("ToPoint() = %v, want (%v, %v)", p, v.X, v.Y)
	}

	back := p.Vec()
	if back != v {
		t.Errorf("Vec() = %v, want %v", back, v)
	}
}

func TestPoint_SubGivesDisplacement(t *testing.T) {
	d := Pt(5, 7).Sub(Pt(2, 3))
	if !vecsClose(d, V2(3, 4)) {
		t.Errorf("Sub = %v, want (3, 4)", d)
	}
	if got := Pt(2, 3).Add(d); !pointsClose(got, Pt(5, 7)) {
		t.Errorf("Add round trip = %v, want (5, 7)", got)
	}
}

func TestPoint_DistanceAndLerp(t *testing.T) {
	if d := Pt(0, 0).Distance(Pt(3, 4)); math.Abs(d-5) > 1e-10 {
		t.Errorf("Distance = %v, want 5", d)
	}
	if d := Pt(0, 0).DistanceSquared(Pt(3, 4)); math.Abs(d-25) > 1e-10 {
		t.Errorf("DistanceSquared = %v, want 25", d)
	}
	if got := Pt(0, 0).Lerp(Pt(10, 10), 0.5); !pointsClose(got, Pt(5, 5)) {
		t.Errorf("Lerp = %v, want (5, 5)", got)
	}
	if got := Pt(2, 2).Mid(Pt(4, 6)); !pointsClose(got, Pt(3, 4)) {
		t.Errorf("Mid = %v, want (3, 4)", got)
	}
}
