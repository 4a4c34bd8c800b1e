package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())
	if result != m {
		t.Errorf("M * I = %v, want %v", result, m)
	}
}

func TestTranslatePoint(t *testing.T) {
	got := Translate(Vec3{5, 10, 15}).TransformVec3(Vec3{1, 1, 1})
	want := Vec3{6, 11, 16}
	if got != want {
		t.Errorf("TransformVec3() = %v, want %v", got, want)
	}
}

func TestRotateYQuarterTurn(t *testing.T) {
	// +90 degrees about Y takes +X to -Z
	got := RotateY(math32.Pi / 2).TransformVec3(Vec3{1, 0, 0})
	if !got.ApproxEqual(Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("RotateY(pi/2) * X = %v, want (0, 0, -1)", got)
	}
}

func TestEulerZeroIsIdentity(t *testing.T) {
	if got := Euler(Vec3{}); got != Identity() {
		t.Errorf("Euler(0) = %v, want identity", got)
	}
}

func TestModelOrder(t *testing.T) {
	// Scale applies first, then translation
	m := Model(Vec3{10, 0, 0}, Vec3{}, 2)
	got := m.TransformVec3(Vec3{1, 0, 0})
	if !got.ApproxEqual(Vec3{12, 0, 0}, 1e-5) {
		t.Errorf("Model * (1,0,0) = %v, want (12, 0, 0)", got)
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{0, 20, 30}
	view := LookAt(eye, Vec3{}, Vec3{0, 1, 0})
	got := view.TransformVec3(eye)
	if !got.ApproxEqual(Vec3{}, 1e-4) {
		t.Errorf("view * eye = %v, want origin", got)
	}
}

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	if got != (Vec3{0, 0, 1}) {
		t.Errorf("Vec3.Cross() = %v, want (0, 0, 1)", got)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize(0) = %v, want zero", got)
	}
}
