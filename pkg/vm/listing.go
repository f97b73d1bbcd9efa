package vm

import (
	"fmt"
	"sort"
	"strings"
)

// Listing renders the compiled program as a numbered mnemonic dump followed
// by the label table, for the CLI -dump / show-program modes.
func (p *Program) Listing() string {
	var b strings.Builder

	for i, in := range p.Instructions {
		fmt.Fprintf(&b, "%4d  %s\n", i, in)
	}

	if len(p.Labels) > 0 {
		names := make([]string, 0, len(p.Labels))
		for name := range p.Labels {
			names = append(names, name)
		}
		sort.Strings(names)

		b.WriteString("labels:\n")
		for _, name := range names {
			fmt.Fprintf(&b, "  %s -> %d\n", name, p.Labels[name])
		}
	}

	return b.String()
}
