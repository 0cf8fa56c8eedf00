package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/guessgrid/internal/core"
)

const (
	gridSide   = 10
	cellWidth  = 5 // " 42 " plus one column of padding
	boardTop   = 3 // Title, HUD, top border
	boardWidth = gridSide * cellWidth

	// MinScreenW and MinScreenH are the smallest screen the board fits on.
	MinScreenW = boardWidth + 2
	MinScreenH = boardTop + gridSide + 4
)

// BoardRect returns where the 10x10 grid is drawn on a screen of width w.
func BoardRect(screenW int) core.Rect {
	x := (screenW - boardWidth) / 2
	if x < 0 {
		x = 0
	}
	return core.NewRect(x, boardTop, boardWidth, gridSide)
}

// SquareAt maps a screen position to the square drawn there.
func SquareAt(screenW, x, y int) (int, bool) {
	r := BoardRect(screenW)
	if !r.Contains(x, y) {
		return NoSquare, false
	}
	row := y - r.Y
	col := (x - r.X) / cellWidth
	return row*gridSide + col + 1, true
}

// CellColor decides how square n is painted. The winning square is revealed
// once the round is over; the selection is only shown while playing.
func CellColor(st State, n int) core.Color {
	switch {
	case st.Progress == Won && n == st.WinningNumber:
		return core.ColorWon
	case st.Progress == Lost && n == st.WinningNumber:
		return core.ColorLost
	case st.Progress == Playing && n == st.SelectedSquare:
		return core.ColorChoice
	case st.IsHint(n):
		return core.ColorHint
	case st.HasGuessed(n):
		return core.ColorGuessed
	}

	row, col := (n-1)/gridSide, (n-1)%gridSide
	if (row+col)%2 == 0 {
		return core.ColorDarkSquare
	}
	return core.ColorLightSquare
}

// Render draws st onto dst. cursor is the square under the keyboard cursor,
// or NoSquare to hide it.
func Render(dst *core.Screen, st State, cursor int) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderTooSmall(dst)
		return
	}

	renderHUD(dst, st)
	renderBoard(dst, st, cursor)
	renderFooter(dst, st)
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorAlert)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorMuted)
}

func renderHUD(dst *core.Screen, st State) {
	dst.DrawTextCentered(0, "G U E S S G R I D", core.ColorTitle)

	hud := fmt.Sprintf("%s  |  Guesses left: %d  |  Hints: %s  |  Streak: %d",
		st.Difficulty.Title(), st.GuessesLeft(), hintLabel(st), st.Winstreak)
	dst.DrawTextCentered(1, hud, core.ColorDefault)
}

func hintLabel(st State) string {
	if st.NumHints == 0 {
		return "none"
	}
	return fmt.Sprintf("%d per hint", st.NumHints)
}

func renderBoard(dst *core.Screen, st State, cursor int) {
	r := BoardRect(dst.Width())
	dst.DrawBox(core.NewRect(r.X-1, r.Y-1, r.W+2, r.H+2), core.ColorMuted)

	for n := MinSquare; n <= MaxSquare; n++ {
		row, col := (n-1)/gridSide, (n-1)%gridSide
		x := r.X + col*cellWidth
		y := r.Y + row

		label := fmt.Sprintf(" %3d ", n)
		if n == cursor {
			label = fmt.Sprintf("[%3d]", n)
		}
		dst.DrawTextColored(x, y, label, CellColor(st, n))
	}
}

func renderFooter(dst *core.Screen, st State) {
	y := boardTop + gridSide + 1

	msgColor := core.ColorDefault
	switch st.Progress {
	case Won:
		msgColor = core.ColorWon
	case Lost:
		msgColor = core.ColorLost
	}
	if st.Message != MsgClear {
		dst.DrawTextCentered(y, string(st.Message), msgColor)
	}

	if len(st.PastGuesses) > 0 {
		dst.DrawTextCentered(y+1, "Guesses: "+guessLog(st.PastGuesses), core.ColorMuted)
	}

	if st.Finished() {
		reveal := fmt.Sprintf("The number was %d. Press n for a new round.", st.WinningNumber)
		dst.DrawTextCentered(y+2, reveal, core.ColorMuted)
	}
}

func guessLog(guesses []int) string {
	parts := make([]string, len(guesses))
	for i, g := range guesses {
		if g == HintMarker {
			parts[i] = "hint"
			continue
		}
		parts[i] = fmt.Sprint(g)
	}
	return strings.Join(parts, ", ")
}
