package main

// terminal is the io.Writer the VM prints into. It keeps the last rows of
// output as wrapped lines and exposes them as a flat cell array for drawing.
type terminal struct {
	cols  int
	rows  int
	lines []string
}

func newTerminal(cols, rows int) *terminal {
	return &terminal{cols: cols, rows: rows, lines: []string{""}}
}

func (t *terminal) Write(p []byte) (int, error) {
	for _, r := range string(p) {
		if r == '\n' {
			t.lines = append(t.lines, "")
			continue
		}
		last := len(t.lines) - 1
		t.lines[last] += string(r)
		if len([]rune(t.lines[last])) >= t.cols {
			t.lines = append(t.lines, "")
		}
	}
	// Scroll: only the last rows lines stay visible.
	if len(t.lines) > t.rows {
		t.lines = t.lines[len(t.lines)-t.rows:]
	}
	return len(p), nil
}

// cells flattens the visible lines into a rows*cols array indexed the same
// way as the screen grid. Empty cells hold the zero rune.
func (t *terminal) cells() []rune {
	cells := make([]rune, t.cols*t.rows)
	for y, line := range t.lines {
		if y >= t.rows {
			break
		}
		for x, r := range []rune(line) {
			if x >= t.cols {
				break
			}
			cells[y*t.cols+x] = r
		}
	}
	return cells
}
