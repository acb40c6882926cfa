package engine

import "testing"

func TestLooseEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"identical strings", "a", "a", true},
		{"numeric widths collapse", 5, 5.0, true},
		{"numeric string vs number", "5", 5, true},
		{"numeric strings compare as strings", "07", "7", false},
		{"bool vs number", true, 1, true},
		{"bool vs zero", false, 0, true},
		{"nil only equals nil", nil, nil, true},
		{"nil vs zero", nil, 0, false},
		{"nil vs empty string", nil, "", false},
		{"deep equal sequences", []any{1.0, 2.0}, []any{1.0, 2.0}, true},
		{"mismatched", "a", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := looseEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("looseEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestStrictEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"numeric widths collapse", 2, 2.0, true},
		{"no string coercion", "5", 5, false},
		{"strings byte-wise", "x", "x", true},
		{"nil matches nil", nil, nil, true},
		{"nil vs value", nil, "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strictEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("strictEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompareOrder(t *testing.T) {
	tests := []struct {
		name   string
		a, b   any
		want   int
		wantOK bool
	}{
		{"numbers", 1.0, 2.0, -1, true},
		{"numeric string vs number", "10", 9, 1, true},
		{"string pair is lexicographic", "10", "9", -1, true},
		{"equal", 3, 3.0, 0, true},
		{"incomparable", "abc", 1, 0, false},
		{"nil is incomparable", nil, 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := compareOrder(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Fatalf("compareOrder(%v, %v) ok = %v, want %v", tt.a, tt.b, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("compareOrder(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIsTruthy(t *testing.T) {
	truthy := []any{"x", 1, -1.5, true, []any{}, map[string]any{}}
	falsy := []any{nil, "", 0, 0.0, false}

	for _, v := range truthy {
		if !isTruthy(v) {
			t.Errorf("isTruthy(%#v) = false, want true", v)
		}
	}
	for _, v := range falsy {
		if isTruthy(v) {
			t.Errorf("isTruthy(%#v) = true, want false", v)
		}
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil is empty", nil, ""},
		{"string passthrough", "a", "a"},
		{"integer-valued float", 5.0, "5"},
		{"fractional float", 5.5, "5.5"},
		{"bool", true, "true"},
		{"sequence joined with commas", []any{"a", "b"}, "a,b"},
		{"nil elements stay empty", []any{"a", nil, "b"}, "a,,b"},
		{"nested sequences", []any{[]any{1.0, 2.0}, "x"}, "1,2,x"},
		{"typed sequence", []string{"p", "q"}, "p,q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stringify(tt.in); got != tt.want {
				t.Errorf("stringify(%#v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
