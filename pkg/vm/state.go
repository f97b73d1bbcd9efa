package vm

import (
	"encoding/json"
	"fmt"

	"github.com/TheOneTwelfth/Quack-Interpreter/pkg/queue"
)

// vmState is the JSON-serializable snapshot of everything a run mutates.
// The program itself is not part of the snapshot; restoring assumes the VM
// was built from the same compiled program.
type vmState struct {
	Queue   []int64             `json:"queue"`
	Regs    [NumRegisters]int64 `json:"regs"`
	RegsSet [NumRegisters]bool  `json:"regs_set"`
	Labels  map[string]int      `json:"labels"`
	PC      int                 `json:"pc"`
	Halted  bool                `json:"halted"`
}

// SaveState serialises the interpreter state (queue contents, registers,
// label bindings, program counter, halt flag) into a JSON document.
func (m *VM) SaveState() ([]byte, error) {
	state := vmState{
		Queue:   m.Queue.Items(),
		Regs:    m.Regs.values,
		RegsSet: m.Regs.set,
		Labels:  m.Labels,
		PC:      m.PC,
		Halted:  m.Halted,
	}
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to serialise vm state: %w", err)
	}
	return data, nil
}

// RestoreState replaces the interpreter state with a previously saved
// snapshot. The loaded program is untouched.
func (m *VM) RestoreState(data []byte) error {
	var state vmState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to decode vm state: %w", err)
	}

	m.Queue = queue.New()
	for _, v := range state.Queue {
		m.Queue.Enqueue(v)
	}
	m.Regs = RegisterBank{values: state.Regs, set: state.RegsSet}
	m.Labels = LabelTable(state.Labels)
	if m.Labels == nil {
		m.Labels = LabelTable{}
	}
	m.PC = state.PC
	m.Halted = state.Halted
	return nil
}
