package main

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/asyncomplete/internal/completion"
	"github.com/dshills/asyncomplete/internal/text"
)

var (
	styleDefault  = tcell.StyleDefault
	stylePopup    = tcell.StyleDefault.Background(tcell.ColorDarkBlue).Foreground(tcell.ColorWhite)
	styleSelected = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	styleIcon     = tcell.StyleDefault.Background(tcell.ColorDarkBlue).Foreground(tcell.ColorYellow)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSoft     = tcell.StyleDefault.Background(tcell.ColorDarkBlue).Foreground(tcell.ColorLightGray)
)

// draw renders the buffer, caret, popup, and status line.
func (a *app) draw() {
	a.screen.Clear()

	snap := a.doc.Snapshot()
	lines := strings.Split(snap.Text(), "\n")
	for y, line := range lines {
		drawString(a.screen, 0, y, line, styleDefault)
	}

	cx, cy := a.caretCell(snap)
	a.screen.ShowCursor(cx, cy)

	if a.popupOpen() {
		a.drawPopup(cx, cy+1)
	}

	_, height := a.screen.Size()
	a.drawStatus(height - 1)

	a.screen.Show()
}

// caretCell converts the caret byte offset to screen coordinates.
func (a *app) caretCell(snap *text.Snapshot) (x, y int) {
	before := snap.TextRange(0, a.caret)
	lines := strings.Split(before, "\n")
	y = len(lines) - 1
	x = runewidth.StringWidth(lines[y])
	return x, y
}

func (a *app) drawPopup(x, y int) {
	cfg := a.config()
	items := a.result.Items

	visible := len(items)
	if visible > cfg.UI.MaxVisibleItems {
		visible = cfg.UI.MaxVisibleItems
	}

	// Keep the selection in the window.
	first := 0
	if a.selected >= visible {
		first = a.selected - visible + 1
	}

	width := popupWidth(a.result)
	row := y

	if sug := a.result.Suggestion; sug != nil {
		drawPadded(a.screen, x, row, " "+sug.DisplayText, width, styleSoft)
		row++
	}

	for i := first; i < first+visible && i < len(items); i++ {
		item := items[i]
		style := stylePopup
		if i == a.selected {
			style = styleSelected
		}

		label := " " + item.DisplayText
		for _, icon := range item.AttributeIcons {
			label += " " + string(icon.Rune())
		}
		drawPadded(a.screen, x+2, row, label, width-2, style)

		iconStyle := styleIcon
		if i == a.selected {
			iconStyle = styleSelected
		}
		if cfg.UI.ShowIcons {
			a.screen.SetContent(x, row, ' ', nil, iconStyle)
			a.screen.SetContent(x+1, row, item.Icon.Rune(), nil, iconStyle)
		} else {
			drawPadded(a.screen, x, row, "  ", 2, iconStyle)
		}
		row++
	}

	// Filter badges of the selected item.
	if filters := items[a.selected].Filters; len(filters) > 0 {
		var badges []string
		for _, f := range filters {
			badges = append(badges, f.DisplayText+"("+string(f.AccessKey)+")")
		}
		drawPadded(a.screen, x, row, " "+strings.Join(badges, " "), width, styleStatus)
	}
}

func (a *app) drawStatus(y int) {
	switch {
	case a.descText != "":
		drawString(a.screen, 0, y, a.descText, styleStatus)
	case a.status != "":
		drawString(a.screen, 0, y, a.status, styleStatus)
	default:
		drawString(a.screen, 0, y, "Ctrl+Space complete | F1 describe | Ctrl+C quit", styleStatus)
	}
}

func popupWidth(res *completion.Result) int {
	width := 8
	for _, item := range res.Items {
		if w := runewidth.StringWidth(item.DisplayText) + 4; w > width {
			width = w
		}
	}
	if sug := res.Suggestion; sug != nil {
		if w := runewidth.StringWidth(sug.DisplayText) + 2; w > width {
			width = w
		}
	}
	return width
}

func drawString(s tcell.Screen, x, y int, str string, style tcell.Style) {
	col := x
	for _, r := range str {
		s.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}

func drawPadded(s tcell.Screen, x, y int, str string, width int, style tcell.Style) {
	col := x
	for _, r := range str {
		if col-x >= width {
			break
		}
		s.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
	for col-x < width {
		s.SetContent(col, y, ' ', nil, style)
		col++
	}
}
