package main

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/xyproto/env/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/TheOneTwelfth/Quack-Interpreter/pkg/compiler"
	"github.com/TheOneTwelfth/Quack-Interpreter/pkg/grid"
	"github.com/TheOneTwelfth/Quack-Interpreter/pkg/utils"
	"github.com/TheOneTwelfth/Quack-Interpreter/pkg/vm"
)

const (
	termCols = 64
	termRows = 32

	// Cell size of basicfont.Face7x13.
	cellWidth  = 7
	cellHeight = 13

	// Instructions executed per frame (~600k steps/s at 60fps). Bounded so
	// a looping program keeps the window responsive.
	stepsPerFrame = 10000
)

type Game struct {
	vm        *vm.VM
	term      *terminal
	statePath string
}

func (g *Game) Update() error {
	// Save a resumable snapshot on S when a state path is configured.
	if g.statePath != "" && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		data, err := g.vm.SaveState()
		if err == nil {
			err = os.WriteFile(g.statePath, data, 0o644)
		}
		if err != nil {
			log.Printf("Failed to save state: %v", err)
		}
	}

	g.vm.RunSteps(stepsPerFrame)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13
	for i, r := range g.term.cells() {
		if r == 0 {
			continue
		}
		x, y := grid.GetGridCoords(i, termCols)
		px := x * cellWidth
		py := (y + 1) * cellHeight
		text.Draw(screen, string(r), face, px, py, color.White)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return termCols * cellWidth, termRows * cellHeight
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: quack-desktop <program.q>")
		os.Exit(2)
	}

	source, _, err := utils.ReadSource(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to read source file: %v", err)
	}

	program := compiler.Compile(source)
	machine := vm.New(program)

	term := newTerminal(termCols, termRows)
	machine.Output = term

	// QUACK_STATE names a snapshot file: restored on startup when present,
	// written on the S key while running.
	statePath := env.Str("QUACK_STATE")
	if statePath != "" {
		if data, err := os.ReadFile(statePath); err == nil {
			if err := machine.RestoreState(data); err != nil {
				log.Fatalf("Failed to restore state: %v", err)
			}
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(termCols*cellWidth*2, termRows*cellHeight*2)
	ebiten.SetWindowTitle("Quack Desktop")

	game := &Game{vm: machine, term: term, statePath: statePath}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
