package vm

import "testing"

func TestLabelTableRebind(t *testing.T) {
	labels := LabelTable{}

	labels.Bind("loop", 4)
	labels.Bind("loop", 9)

	index, ok := labels.Lookup("loop")
	if !ok || index != 9 {
		t.Errorf("expected 9, got %d (ok=%v)", index, ok)
	}

	if _, ok := labels.Lookup("Loop"); ok {
		t.Error("label names are case-sensitive")
	}
}

func TestLabelTableClone(t *testing.T) {
	labels := LabelTable{"a": 1}

	clone := labels.Clone()
	clone.Bind("a", 2)

	if index, _ := labels.Lookup("a"); index != 1 {
		t.Errorf("clone must not alias the original, got %d", index)
	}
}
