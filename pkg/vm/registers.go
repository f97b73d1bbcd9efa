package vm

// NumRegisters is the size of the register bank, one slot per letter a-z.
const NumRegisters = 26

// RegisterBank holds 26 integer slots. A slot that has never been written
// is unset, which is distinct from holding zero; Load reports the
// distinction through its second return.
type RegisterBank struct {
	values [NumRegisters]int64
	set    [NumRegisters]bool
}

func (b *RegisterBank) Store(reg byte, v int64) {
	b.values[reg] = v
	b.set[reg] = true
}

func (b *RegisterBank) Load(reg byte) (int64, bool) {
	return b.values[reg], b.set[reg]
}

func (b *RegisterBank) IsSet(reg byte) bool {
	return b.set[reg]
}
