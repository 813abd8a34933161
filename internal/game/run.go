package game

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"mazerunner/internal/audio"
	"mazerunner/internal/config"
	"mazerunner/internal/maze"
	"mazerunner/internal/session"
	"mazerunner/internal/view"
)

// Run opens the window and runs the game until it is closed.
func Run(cfg config.Config, logger *log.Logger) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	logger.Printf("[INFO] OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	var sfx *audio.System
	if cfg.AudioEnabled {
		sfx, err = audio.Init(cfg.SFXVolume, cfg.MusicVolume, logger)
		if err != nil {
			logger.Printf("[WARN] audio init failed (continuing without sound): %v", err)
		} else {
			go func() {
				if !sfx.WaitReady(AudioReadyTimeout) {
					logger.Printf("[WARN] audio device not ready after %s, ambience disabled", AudioReadyTimeout)
					return
				}
				sfx.StartAmbience(cfg.Seed)
			}()
		}
	}
	defer sfx.Close()

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	fbW, fbH := window.GetFramebufferSize()
	post, err := NewPostFX(fbW, fbH)
	if err != nil {
		return fmt.Errorf("post fx: %w", err)
	}
	defer post.Destroy()

	sess := session.New(session.Options{
		CellSize: cfg.CellSize,
		Radius:   cfg.PlayerRadius,
		Speed:    cfg.MoveSpeed,
	})
	menu := view.NewMenu(cfg.Difficulty)
	input := NewInput(window)
	var shake Shake
	lookSpeed := cfg.LookSpeed
	nextSeed := cfg.Seed

	begin := func(start func() error) {
		if err := start(); err != nil {
			logger.Printf("[ERROR] %v", err)
			return
		}
		nextSeed = maze.Mix(sess.Seed)
		rend.LoadMaze(sess.Grid, cfg.CellSize)
		post.Enabled = cfg.Drunk || sess.Difficulty == maze.Hard
		input.ResetMouse()
		logger.Printf("[INFO] session %s: %s %dx%d seed %d",
			sess.ID, sess.Difficulty, sess.Grid.Width, sess.Grid.Height, sess.Seed)
	}
	startDifficulty := func(d maze.Difficulty) {
		sfx.Play(audio.SoundMenuSelect, 0)
		begin(func() error { return sess.Start(d, nextSeed) })
	}

	if cfg.DifficultySet {
		startDifficulty(cfg.Difficulty)
	}

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameDt {
			dt = MaxFrameDt
		}

		glfw.PollEvents()

		fbW, fbH = window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		if sfx != nil {
			if input.JustPressed(window, glfw.KeyMinus) {
				sfx.SetSFXVolume(sfx.SFXVolume() - audio.VolumeStep)
			}
			if input.JustPressed(window, glfw.KeyEqual) {
				sfx.SetSFXVolume(sfx.SFXVolume() + audio.VolumeStep)
			}
			if input.JustPressed(window, glfw.KeyLeftBracket) {
				sfx.SetMusicVolume(sfx.MusicVolume() - audio.VolumeStep)
			}
			if input.JustPressed(window, glfw.KeyRightBracket) {
				sfx.SetMusicVolume(sfx.MusicVolume() + audio.VolumeStep)
			}
		}

		switch sess.State {
		case session.StateMenu:
			if input.JustPressed(window, glfw.KeyEscape) {
				window.SetShouldClose(true)
				continue
			}
			if input.JustPressed(window, glfw.KeyUp) {
				menu.Up()
			}
			if input.JustPressed(window, glfw.KeyDown) {
				menu.Down()
			}
			for i, key := range []glfw.Key{glfw.Key1, glfw.Key2, glfw.Key3} {
				if input.JustPressed(window, key) {
					if d, ok := menu.Pick(rune('1' + i)); ok {
						startDifficulty(d)
					}
				}
			}
			if input.JustPressed(window, glfw.KeyEnter) && sess.State == session.StateMenu {
				startDifficulty(menu.Current())
			}

		case session.StatePlaying:
			if input.JustPressed(window, glfw.KeyEscape) {
				sess.BackToMenu()
				continue
			}
			if input.JustPressed(window, glfw.KeyR) {
				begin(sess.Restart)
				continue
			}
			p := sess.Player
			if input.JustPressed(window, glfw.KeyF) {
				p.ToggleFly()
			}
			if input.JustPressed(window, glfw.KeyB) {
				post.Toggle()
			}
			if input.JustPressed(window, glfw.KeyM) {
				lookSpeed += LookSpeedStep
			}
			if input.JustPressed(window, glfw.KeyN) {
				lookSpeed = max(lookSpeed-LookSpeedStep, MinLookSpeed)
			}

			// Mouse y grows downward; arrow look speed is degrees per 60 Hz frame.
			mx, my := input.MouseDelta(window)
			ay, ap := ArrowLook(window)
			frames := dt * 60
			p.Look(mx*cfg.MouseSense+ay*lookSpeed*frames, -my*cfg.MouseSense+ap*lookSpeed*frames)
			if sc := input.Scroll(); sc != 0 {
				p.ZoomBy(sc * ScrollZoom)
			}

			ev := sess.Update(MoveIntent(window), dt)
			if ev.Has(session.EventFootstep) {
				sfx.Play(audio.SoundFootstep, footPan(sess.LastFoot))
			}
			if ev.Has(session.EventBump) {
				sfx.Play(audio.SoundBump, 0)
				shake.Add(BumpShakeIntensity, BumpShakeDuration)
			}
			if ev.Has(session.EventSolved) {
				sfx.Play(audio.SoundVictory, 0)
				logger.Printf("[INFO] session %s: %s", sess.ID, view.SolvedSummary(sess.Difficulty, sess.Elapsed, sess.Steps))
			}

		case session.StateSolved:
			if input.JustPressed(window, glfw.KeySpace) || input.JustPressed(window, glfw.KeyEscape) {
				sess.BackToMenu()
			}
			if input.JustPressed(window, glfw.KeyR) {
				begin(sess.Restart)
			}
		}

		shake.Update(dt, sess.Seed^uint64(now*1000))
		post.Update(dt)
		post.Resize(fbW, fbH)
		fx := post.Active()
		if fx {
			post.Begin()
		}
		if sess.Player != nil {
			eye := *sess.Player
			eye.Look(shake.Yaw, shake.Pitch)
			rend.DrawScene(&eye, fbW, fbH, now)
		} else {
			r, g, b := Palette.Fog.Floats()
			gl.Viewport(0, 0, int32(fbW), int32(fbH))
			gl.ClearColor(r, g, b, 1)
			gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		}
		if fx {
			post.End(now, fbW, fbH)
		}

		RenderHUD(rend, sess, menu, post.Enabled, fbW, fbH)
		rend.FlushText(fbW, fbH)
		window.SwapBuffers()
	}
	return nil
}
