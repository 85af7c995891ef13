package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/palette"
	"github.com/plus3/blockfall/shape"
)

// SessionInspector shows the live state of a session: timing, flags, the
// active and held pieces and the upcoming preview.
type SessionInspector struct {
	Session *game.Session
	Palette *palette.Palette

	events []game.Event
}

// NewSessionInspector subscribes to the session so the window can list the
// most recent events.
func NewSessionInspector(session *game.Session, pal *palette.Palette) *SessionInspector {
	si := &SessionInspector{Session: session, Palette: pal}
	session.Subscribe(si.record)
	return si
}

const eventHistory = 12

func (si *SessionInspector) record(e game.Event) {
	if e.Kind == game.Moved || e.Kind == game.Rotated {
		return
	}
	si.events = append(si.events, e)
	if len(si.events) > eventHistory {
		si.events = si.events[len(si.events)-eventHistory:]
	}
}

func (si *SessionInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 380), imgui.CondOnce)

	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := si.Session.Snapshot()

	imgui.Text(fmt.Sprintf("Round: %s", si.Session.Round()))
	imgui.Text(fmt.Sprintf("Frame: %d", snap.Frame))
	imgui.Text(fmt.Sprintf("Step Delay: %d frames", snap.StepDelay))
	imgui.Text(fmt.Sprintf("Bag Cursor: %d", si.Session.BagCursor()))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Hard Drop: %t", snap.HardDrop))
	imgui.Text(fmt.Sprintf("Swapped: %t", snap.Swapped))
	imgui.Text(fmt.Sprintf("Game Over: %t", snap.GameOver))
	imgui.Separator()

	si.pieceLine("Active", &snap.Active)
	if snap.Hold != nil {
		si.pieceLine("Hold", snap.Hold)
	} else {
		imgui.Text("Hold: empty")
	}

	if imgui.TreeNodeStr("Preview") {
		for i, t := range snap.Preview {
			si.colored(t.Kind().Cell(), fmt.Sprintf("%d. %s", i+1, t))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Recent Events") {
		for i := len(si.events) - 1; i >= 0; i-- {
			imgui.BulletText(fmt.Sprintf("#%d %s", si.events[i].Frame, si.events[i]))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (si *SessionInspector) pieceLine(label string, p *game.PieceView) {
	si.colored(p.Kind.Cell(), fmt.Sprintf("%s: %s at (%d,%d) size %d", label, p.Kind, p.X, p.Y, p.Size))
}

func (si *SessionInspector) colored(cell shape.Cell, text string) {
	if si.Palette == nil {
		imgui.Text(text)
		return
	}

	c := si.Palette.Color(cell)
	imgui.PushStyleColorVec4(imgui.ColText, imgui.NewVec4(
		float32(c.R)/255.0,
		float32(c.G)/255.0,
		float32(c.B)/255.0,
		1.0,
	))
	imgui.Text(text)
	imgui.PopStyleColor()
}
