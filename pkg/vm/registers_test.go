package vm

import "testing"

func TestRegisterBankUnsetIsNotZero(t *testing.T) {
	var b RegisterBank

	if _, ok := b.Load(0); ok {
		t.Error("fresh register must be unset")
	}

	b.Store(0, 0)
	v, ok := b.Load(0)
	if !ok {
		t.Error("stored zero must read back as set")
	}
	if v != 0 {
		t.Errorf("expected 0, got %d", v)
	}
}

func TestRegisterBankOverwrite(t *testing.T) {
	var b RegisterBank

	b.Store(25, 7)
	b.Store(25, -3)

	v, ok := b.Load(25)
	if !ok || v != -3 {
		t.Errorf("expected -3, got %d (set=%v)", v, ok)
	}

	// Slots are independent.
	if b.IsSet(24) {
		t.Error("neighbouring slot must stay unset")
	}
}
