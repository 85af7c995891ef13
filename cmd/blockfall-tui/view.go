package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/palette"
	"github.com/plus3/blockfall/shape"
)

const (
	boardLeft   = 12
	boardTop    = 1
	sidebarLeft = boardLeft + 2*10 + 4
)

// view draws snapshots onto a tcell screen. Each cell is two columns wide so
// blocks come out roughly square.
type view struct {
	screen tcell.Screen
	styles [shape.KindCount + 1]tcell.Style
	empty  tcell.Style
	border tcell.Style
	text   tcell.Style
}

func newView(screen tcell.Screen, pal *palette.Palette) *view {
	v := &view{
		screen: screen,
		empty:  tcell.StyleDefault.Foreground(tcell.ColorGray),
		border: tcell.StyleDefault.Foreground(tcell.ColorSilver),
		text:   tcell.StyleDefault,
	}
	for i := range v.styles {
		c := pal.Color(shape.Cell(i))
		v.styles[i] = tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	return v
}

func (v *view) cell(x, y int, c shape.Cell) {
	if !c.Occupied() {
		v.screen.SetContent(x, y, ' ', nil, v.empty)
		v.screen.SetContent(x+1, y, '.', nil, v.empty)
		return
	}
	style := v.empty
	if int(c) < len(v.styles) {
		style = v.styles[c]
	}
	v.screen.SetContent(x, y, ' ', nil, style)
	v.screen.SetContent(x+1, y, ' ', nil, style)
}

func (v *view) print(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *view) shape(x, y int, rows [][]shape.Cell) {
	for dy, row := range rows {
		for dx, c := range row {
			if c.Occupied() {
				v.cell(x+2*dx, y+dy, c)
			}
		}
	}
}

func (v *view) draw(snap game.Snapshot) {
	v.screen.Clear()

	cells := snap.Composite()
	width := len(cells[0])
	for y, row := range cells {
		v.screen.SetContent(boardLeft-1, boardTop+y, '│', nil, v.border)
		for x, c := range row {
			v.cell(boardLeft+2*x, boardTop+y, c)
		}
		v.screen.SetContent(boardLeft+2*width, boardTop+y, '│', nil, v.border)
	}
	for x := -1; x <= 2*width; x++ {
		v.screen.SetContent(boardLeft+x, boardTop+len(cells), '─', nil, v.border)
	}

	v.print(1, boardTop, "HOLD", v.text)
	if snap.Hold != nil {
		v.shape(1, boardTop+2, snap.Hold.Cells)
	}

	v.print(sidebarLeft, boardTop, "NEXT", v.text)
	row := boardTop + 2
	for _, t := range snap.Preview {
		rows := t.Rows()
		v.shape(sidebarLeft, row, rows)
		row += len(rows) + 1
	}

	status := fmt.Sprintf("frame %d  delay %d", snap.Frame, snap.StepDelay)
	if snap.GameOver {
		status = "GAME OVER"
	}
	v.print(boardLeft, boardTop+len(cells)+1, status, v.text)
	v.print(boardLeft, boardTop+len(cells)+2, "arrows move  z/x rotate  space drop  c hold  q quit", v.empty)

	v.screen.Show()
}
