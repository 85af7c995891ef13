package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kamstrup/intmap"
	"golang.org/x/image/font/basicfont"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/palette"
	"github.com/plus3/blockfall/shape"
)

const (
	CellSize    = 22
	PreviewCell = 12

	boardX   = 190
	boardY   = 40
	holdX    = 40
	holdY    = 60
	previewX = 440
	previewY = 60
)

var (
	gridColor  = color.RGBA{220, 220, 215, 255}
	frameColor = color.RGBA{40, 40, 40, 255}
	labelColor = color.RGBA{30, 30, 30, 255}
)

// Renderer draws snapshots. Tiles are cached per cell value and size.
type Renderer struct {
	palette *palette.Palette
	face    *text.GoXFace
	tiles   *intmap.Map[uint32, *ebiten.Image]
}

func NewRenderer(pal *palette.Palette) *Renderer {
	return &Renderer{
		palette: pal,
		face:    text.NewGoXFace(basicfont.Face7x13),
		tiles:   intmap.New[uint32, *ebiten.Image](16),
	}
}

func tileKey(c shape.Cell, size int) uint32 {
	return uint32(size)<<8 | uint32(c)
}

func (r *Renderer) tile(c shape.Cell, size int) *ebiten.Image {
	key := tileKey(c, size)
	if img, ok := r.tiles.Get(key); ok {
		return img
	}

	img := ebiten.NewImage(size, size)
	img.Fill(r.palette.Color(c))
	vector.StrokeRect(img, 0, 0, float32(size), float32(size), 1, gridColor, false)
	r.tiles.Put(key, img)
	return img
}

func (r *Renderer) drawCell(dst *ebiten.Image, c shape.Cell, x, y float64, size int) {
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(x, y)
	dst.DrawImage(r.tile(c, size), opts)
}

func (r *Renderer) label(dst *ebiten.Image, s string, x, y float64) {
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x, y)
	opts.ColorScale.ScaleWithColor(labelColor)
	text.Draw(dst, s, r.face, opts)
}

func (r *Renderer) Draw(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(r.palette.Background())

	cells := snap.Composite()
	for y, row := range cells {
		for x, c := range row {
			r.drawCell(screen, c, float64(boardX+x*CellSize), float64(boardY+y*CellSize), CellSize)
		}
	}

	w := float32(len(cells[0]) * CellSize)
	h := float32(len(cells) * CellSize)
	vector.StrokeRect(screen, boardX-1, boardY-1, w+2, h+2, 2, frameColor, false)

	r.label(screen, "HOLD", holdX, holdY-20)
	if snap.Hold != nil {
		r.drawShape(screen, snap.Hold.Cells, holdX, holdY, CellSize)
	}

	r.label(screen, "NEXT", previewX, previewY-20)
	for i, t := range snap.Preview {
		r.drawShape(screen, t.Rows(), previewX, float64(previewY+i*5*PreviewCell), PreviewCell)
	}

	if snap.GameOver {
		r.label(screen, "GAME OVER", boardX+float64(w)/2-31, boardY+float64(h)/2-6)
	}
}

// drawShape draws only the occupied cells of a shape matrix.
func (r *Renderer) drawShape(dst *ebiten.Image, rows [][]shape.Cell, x, y float64, size int) {
	for dy, row := range rows {
		for dx, c := range row {
			if !c.Occupied() {
				continue
			}
			r.drawCell(dst, c, x+float64(dx*size), y+float64(dy*size), size)
		}
	}
}
