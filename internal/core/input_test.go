package core

import "testing"

func TestHeldAliases(t *testing.T) {
	tests := []struct {
		name    string
		pressed []string
		control Control
		want    bool
	}{
		{"arrow up", []string{KeyUp}, ControlUp, true},
		{"w alias", []string{KeyW}, ControlUp, true},
		{"s alias", []string{KeyS}, ControlDown, true},
		{"a alias", []string{KeyA}, ControlLeft, true},
		{"d alias", []string{KeyD}, ControlRight, true},
		{"space fires", []string{KeySpace}, ControlFire, true},
		{"wrong key", []string{KeyDown}, ControlUp, false},
		{"nothing held", nil, ControlFire, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ks := NewKeyState()
			for _, k := range tc.pressed {
				ks.Press(k)
			}
			if got := Held(ks, tc.control); got != tc.want {
				t.Errorf("Held(%s) = %v, expected %v", tc.control, got, tc.want)
			}
		})
	}
}

func TestKeyStateUnknownName(t *testing.T) {
	ks := NewKeyState()
	if ks.IsDown("F13") {
		t.Error("unknown key should not be down")
	}
	ks.Press("F13")
	if !ks.IsDown("F13") {
		t.Error("pressed key should be down even if no control uses it")
	}
}

func TestKeyStateRelease(t *testing.T) {
	ks := NewKeyState()
	ks.Press(KeyLeft)
	ks.Press(KeySpace)

	ks.Release(KeyLeft)
	if ks.IsDown(KeyLeft) {
		t.Error("released key should not be down")
	}
	if !ks.IsDown(KeySpace) {
		t.Error("other keys should stay down")
	}

	ks.ReleaseAll()
	if ks.IsDown(KeySpace) {
		t.Error("ReleaseAll should clear every key")
	}
}

func TestHeldNilInput(t *testing.T) {
	if Held(nil, ControlFire) {
		t.Error("nil input should report nothing held")
	}
}
