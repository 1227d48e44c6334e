package imath

import "testing"

func TestMul64(t *testing.T) {
	w := Mul64(0xFFFFFFFFFFFFFFFF, 2)
	if w.Hi != 1 || w.Lo != 0xFFFFFFFFFFFFFFFE {
		t.Errorf("Mul64(max, 2) = %+v; want {1 0xFFFFFFFFFFFFFFFE}", w)
	}
}

func TestWide128AddSub(t *testing.T) {
	a := Wide128{Hi: 0, Lo: 0xFFFFFFFFFFFFFFFF}
	b := Wide128{Hi: 0, Lo: 1}
	sum := a.Add(b)
	if sum.Hi != 1 || sum.Lo != 0 {
		t.Errorf("Add carry: got %+v; want {1 0}", sum)
	}
	diff := sum.Sub(b)
	if diff != a {
		t.Errorf("Sub: got %+v; want %+v", diff, a)
	}
}

func TestWide128ShiftsAndCmp(t *testing.T) {
	w := Wide128{Hi: 0, Lo: 1}.Lsh(64)
	if w.Hi != 1 || w.Lo != 0 {
		t.Errorf("Lsh(64) = %+v; want {1 0}", w)
	}
	back := w.Rsh(64)
	if back.Hi != 0 || back.Lo != 1 {
		t.Errorf("Rsh(64) = %+v; want {0 1}", back)
	}
	if w.Cmp(back) <= 0 {
		t.Errorf("expected w > back")
	}
	if back.IsZero() {
		t.Errorf("back should not be zero")
	}
}

func TestRShiftRoundToOdd(t *testing.T) {
	if got := RShiftRoundToOdd[uint64](0b1010, 1); got != 0b101 {
		t.Errorf("exact shift: got %b; want %b", got, 0b101)
	}
	if got := RShiftRoundToOdd[uint64](0b1011, 1); got != 0b101|1 {
		t.Errorf("sticky shift: got %b; want %b", got, 0b101|1)
	}
	if got := RShiftRoundToOdd[uint64](0, 0); got != 0 {
		t.Errorf("zero shift of zero: got %d", got)
	}
	if got := RShiftRoundToOdd[uint64](5, 200); got != 1 {
		t.Errorf("overshift of nonzero: got %d; want 1", got)
	}
	if got := RShiftRoundToOdd[uint64](0, 200); got != 0 {
		t.Errorf("overshift of zero: got %d; want 0", got)
	}
}

func TestDivRem128By64(t *testing.T) {
	q, r := DivRem128By64(0, 100, 7)
	if q != 14 || r != 2 {
		t.Errorf("DivRem128By64(0,100,7) = (%d,%d); want (14,2)", q, r)
	}
}
