package vm

// LabelTable maps label names to instruction indices. Bindings are not
// write-once: the compiler overwrites on redefinition and the engine
// overwrites again every time a MARK executes.
type LabelTable map[string]int

func (t LabelTable) Bind(name string, index int) {
	t[name] = index
}

func (t LabelTable) Lookup(name string) (int, bool) {
	index, ok := t[name]
	return index, ok
}

func (t LabelTable) Clone() LabelTable {
	out := make(LabelTable, len(t))
	for name, index := range t {
		out[name] = index
	}
	return out
}
