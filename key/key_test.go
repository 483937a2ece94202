package key

import "testing"

func TestKey_Accessors(t *testing.T) {
	tests := []struct {
		k    Key
		kind Kind
		r    rune
		num  uint8
	}{
		{Left, KindLeft, 0, 0},
		{Esc, KindEsc, 0, 0},
		{F(5), KindF, 0, 5},
		{F(23), KindF, 0, 23},
		{Char('a'), KindChar, 'a', 0},
		{Char('世'), KindChar, '世', 0},
		{Alt(0), KindAlt, 0, 0},
		{Alt('x'), KindAlt, 'x', 0},
		{Ctrl('c'), KindCtrl, 'c', 0},
		{None, KindNone, 0, 0},
	}
	for _, tt := range tests {
		if got := tt.k.Kind(); got != tt.kind {
			t.Errorf("%v.Kind() = %v, want %v", tt.k, got, tt.kind)
		}
		if got := tt.k.Rune(); got != tt.r {
			t.Errorf("%v.Rune() = %q, want %q", tt.k, got, tt.r)
		}
		if got := tt.k.Num(); got != tt.num {
			t.Errorf("%v.Num() = %d, want %d", tt.k, got, tt.num)
		}
	}
}

func TestKey_Equality(t *testing.T) {
	if Char('a') != Char('a') {
		t.Error("Char('a') != Char('a')")
	}
	if Char('a') == Alt('a') || Alt('a') == Ctrl('a') {
		t.Error("modifier variants with the same payload compare equal")
	}
	if Alt(0) == Ctrl(0) {
		t.Error("Alt and Ctrl sentinels compare equal")
	}
	if F(1) == Char(1) {
		t.Error("F(1) == Char(1)")
	}

	seen := map[Key]int{Left: 1, F(3): 2, Char('q'): 3}
	if seen[F(3)] != 2 || seen[Char('q')] != 3 || seen[Left] != 1 {
		t.Errorf("map lookup by key failed: %v", seen)
	}
}

func TestKey_Valid(t *testing.T) {
	valid := []Key{Backspace, Left, Right, Up, Down, Home, End, PageUp, PageDown,
		BackTab, Delete, Insert, Null, Esc, F(0), F(12), F(MaxF), Char(' '), Alt(0), Ctrl('z')}
	for _, k := range valid {
		if !k.Valid() {
			t.Errorf("%v.Valid() = false", k)
		}
	}

	invalid := []Key{None, F(MaxF + 1), Key(kindCount) << kindShift, Left | 1}
	for _, k := range invalid {
		if k.Valid() {
			t.Errorf("%#x.Valid() = true", uint32(k))
		}
	}
}

func TestKey_InvalidRuneClamped(t *testing.T) {
	if got := Char(-1).Rune(); got != '�' {
		t.Errorf("Char(-1).Rune() = %q, want replacement char", got)
	}
	if got := Alt(0x110000).Rune(); got != '�' {
		t.Errorf("Alt(0x110000).Rune() = %q, want replacement char", got)
	}
}

func TestKey_String(t *testing.T) {
	tests := []struct {
		k    Key
		want string
	}{
		{None, "None"},
		{Left, "Left"},
		{PageDown, "PageDown"},
		{BackTab, "BackTab"},
		{F(5), "F(5)"},
		{Char('a'), "Char('a')"},
		{Char(' '), "Char(' ')"},
		{Alt(0), `Alt('\x00')`},
		{Ctrl('c'), "Ctrl('c')"},
		{Null, "Null"},
		{Esc, "Esc"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
