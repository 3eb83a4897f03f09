package vec

import "testing"

func TestVec2_Arithmetic(t *testing.T) {
	a := Vec2[int]{X: 1, Y: 2}
	b := Vec2[int]{X: 3, Y: 4}

	if got := a.Add(b); got != (Vec2[int]{4, 6}) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != (Vec2[int]{2, 2}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(b); got != (Vec2[int]{3, 8}) {
		t.Errorf("Mul = %v", got)
	}
	if got := b.Div(a); got != (Vec2[int]{3, 2}) {
		t.Errorf("Div = %v", got)
	}
	if got := a.MulS(10); got != (Vec2[int]{10, 20}) {
		t.Errorf("MulS = %v", got)
	}
	if got := a.Sum(); got != 3 {
		t.Errorf("Sum = %d, want 3", got)
	}
}

func TestVec2_SplatAndZero(t *testing.T) {
	if got := Splat2(7); got != (Vec2[int]{7, 7}) {
		t.Errorf("Splat2 = %v", got)
	}
	if got := (Vec2[float64]{1, 2}).Zero(); got != (Vec2[float64]{}) {
		t.Errorf("Zero = %v", got)
	}
}

func TestVec2_String(t *testing.T) {
	if got := (Vec2[int]{1, 2}).String(); got != "1, 2" {
		t.Errorf("String = %q", got)
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := Vec3[float64]{X: 1, Y: 2, Z: 3}
	b := Vec3[float64]{X: 2, Y: 2, Z: 2}

	if got := a.Add(b); got != (Vec3[float64]{3, 4, 5}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.DivS(2); got != (Vec3[float64]{0.5, 1, 1.5}) {
		t.Errorf("DivS = %v", got)
	}
	if got := a.Sum(); got != 6 {
		t.Errorf("Sum = %v, want 6", got)
	}
	if got := Splat3(int8(3)); got != (Vec3[int8]{3, 3, 3}) {
		t.Errorf("Splat3 = %v", got)
	}
}

func TestVec4_Arithmetic(t *testing.T) {
	a := Vec4[int]{X: 1, Y: 2, Z: 3, W: 4}
	b := Vec4[int]{X: 4, Y: 3, Z: 2, W: 1}

	if got := a.Add(b); got != (Vec4[int]{5, 5, 5, 5}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Mul(b); got != (Vec4[int]{4, 6, 6, 4}) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.SubS(1); got != (Vec4[int]{0, 1, 2, 3}) {
		t.Errorf("SubS = %v", got)
	}
	if got := a.Sum(); got != 10 {
		t.Errorf("Sum = %d, want 10", got)
	}
	if got := (Vec4[int]{1, 2, 3, 4}).String(); got != "1, 2, 3, 4" {
		t.Errorf("String = %q", got)
	}
}
