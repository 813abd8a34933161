package game

import (
	"fmt"

	"mazerunner/internal/player"
	"mazerunner/internal/session"
	"mazerunner/internal/view"
)

// RenderHUD draws the overlay for the current session state.
func RenderHUD(r *Renderer, s *session.Session, menu *view.Menu, drunk bool, fbW, fbH int) {
	switch s.State {
	case session.StateMenu:
		title := "MAZE RUNNER"
		r.DrawCentered(title, fbW, fbH/2-r.LineHeight(TitleScale)*2, TitleScale, Palette.Title)

		y := fbH/2 - r.LineHeight(MenuScale)
		for i, line := range menu.Lines() {
			col := Palette.Text
			if i == menu.Selected {
				col = Palette.Highlight
			}
			r.DrawCentered(line, fbW, y, MenuScale, col)
			y += r.LineHeight(MenuScale) + 6
		}

		hint := "1/2/3 or Up/Down + Enter to start, Esc to quit"
		r.DrawCentered(hint, fbW, y+r.LineHeight(HUDScale), HUDScale, Palette.TextDim)

	case session.StatePlaying:
		p := s.Player
		top := 8
		r.DrawString(view.FormatClock(s.Elapsed), 8, top, HUDScale, Palette.Text)

		info := fmt.Sprintf("%s  steps %d", s.Difficulty, s.Steps)
		r.DrawString(info, fbW-r.font.TextWidth(info, HUDScale)-8, top, HUDScale, Palette.Text)

		hint := view.CompassHint(p.X, p.Z, p.Yaw, s.Grid, s.Options().CellSize)
		r.DrawCentered(hint, fbW, top, HUDScale, Palette.Beacon)

		var flags string
		if p.FlyMode {
			flags += "FLY "
		}
		if drunk {
			flags += "DRUNK "
		}
		if p.Zoom < player.MaxZoom {
			flags += fmt.Sprintf("ZOOM %.0f", p.Zoom)
		}
		if flags != "" {
			r.DrawString(flags, 8, fbH-r.LineHeight(HUDScale)-8, HUDScale, Palette.Warn)
		}

		// Crosshair.
		cx := fbW/2 - r.font.TextWidth("+", HUDScale)/2
		cy := fbH/2 - r.LineHeight(HUDScale)/2
		r.DrawString("+", cx, cy, HUDScale, Palette.TextDim)

	case session.StateSolved:
		r.DrawCentered("SOLVED", fbW, fbH/2-r.LineHeight(TitleScale)*2, TitleScale, Palette.Good)
		summary := view.SolvedSummary(s.Difficulty, s.Elapsed, s.Steps)
		r.DrawCentered(summary, fbW, fbH/2, MenuScale, Palette.Text)
		hint := "Space for menu, R for new maze"
		r.DrawCentered(hint, fbW, fbH/2+r.LineHeight(MenuScale)*2, HUDScale, Palette.TextDim)
	}
}
