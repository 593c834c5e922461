package main

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"room-planner/internal/camera"
	"room-planner/internal/commands"
	"room-planner/internal/config"
	"room-planner/internal/debug"
	"room-planner/internal/furniture"
	"room-planner/internal/graphics"
	"room-planner/internal/layout"
	"room-planner/internal/logger"
	"room-planner/internal/picking"
	"room-planner/internal/primitives"
	"room-planner/internal/render"
	"room-planner/internal/scene"
	"room-planner/internal/terminal"
	"room-planner/internal/textures"
	"room-planner/internal/viewport"
)

// planner is the state shared by the frame loop and the terminal commands.
type planner struct {
	prefs    config.Prefs
	log      *logger.Logger
	store    *layout.Store
	reg      *furniture.Registry
	ctrl     *picking.Controller
	dbg      *debug.Debug
	composer *scene.Composer
	mode     camera.ViewMode
	frame    *scene.Frame
}

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	prefs, cfgErr := config.Load()
	prefs = config.ApplyEnv(prefs)

	log := logger.New(prefs.LogPath)
	if cfgErr != nil {
		log.Logf("%v, using defaults", cfgErr)
	}
	store, err := layout.Load(prefs.LayoutPath, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	reg := furniture.NewRegistry()
	p := &planner{
		prefs:    prefs,
		log:      log,
		store:    store,
		reg:      reg,
		ctrl:     picking.New(store.Apply, picking.Options{ReleaseOnLeave: prefs.ReleaseOnLeave, Log: log}),
		dbg:      debug.New(),
		composer: scene.New(reg, camera.NewRig(), log),
		mode:     prefs.Mode(),
	}
	p.dbg.SetShowFPS(prefs.ShowFPS)

	mouse := &viewport.Mouse{}
	p.ctrl.Attach(mouse)

	cmds := commands.NewRegistry()
	registerCommands(cmds, p)
	term := terminal.New(log, cmds)

	prims := primitives.NewRegistry()
	tex := textures.NewCache(prefs.TextureRoot, log)
	renderer := render.New(prims, tex)

	log.Logf("planner: %s, %d pieces, %s view (ESC opens the terminal, 'help' lists commands)",
		store.Path(), len(store.Furniture()), p.mode)

	update := func() {
		term.Update()
		if !term.IsOpen() {
			p.shortcuts()
		}
		vp := viewport.Screen()
		// Events are handled against the frame on screen; the frame drawn below reflects them.
		mouse.Poll(vp)
		viewport.Drive(p.composer.Rig(), viewport.ReadGestures(vp, p.ctrl.State() == picking.Dragging))
		p.compose()
	}
	draw := func() {
		rl.BeginMode3D(viewport.Camera3D(p.frame.Camera))
		_, selected, _ := p.ctrl.Selected()
		renderer.Draw(p.frame, selected)
		rl.EndMode3D()

		p.dbg.SetStatus(p.status()...)
		p.dbg.Draw()
		term.Draw()
	}
	teardown := func() {
		p.ctrl.Detach()
		tex.Unload()
		prims.Unload()
		p.shutdown()
	}

	p.compose()
	graphics.Run(graphics.Window{
		Title:      "Room Planner",
		Width:      prefs.WindowWidth,
		Height:     prefs.WindowHeight,
		Fullscreen: prefs.Fullscreen,
	}, nil, update, draw, teardown)
}

// compose rebuilds the frame from the store and rebinds the picking controller to it.
func (p *planner) compose() {
	p.frame = p.composer.Compose(scene.Input{
		Room:      p.store.Room(),
		Furniture: p.store.Furniture(),
		ViewMode:  p.mode,
	})
	p.ctrl.Bind(p.frame)
}

// shortcuts handles keys while the terminal is closed: Tab switches view, Delete removes the
// dragged piece, Ctrl+S saves.
func (p *planner) shortcuts() {
	if rl.IsKeyPressed(rl.KeyTab) {
		p.setMode(toggle(p.mode))
	}
	if rl.IsKeyPressed(rl.KeyDelete) {
		if _, id, ok := p.ctrl.Selected(); ok {
			p.remove(id)
		}
	}
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper)
	if ctrl && rl.IsKeyPressed(rl.KeyS) {
		p.save()
	}
}

func toggle(m camera.ViewMode) camera.ViewMode {
	if m == camera.TopDown {
		return camera.Free
	}
	return camera.TopDown
}

func (p *planner) setMode(m camera.ViewMode) {
	if m == p.mode {
		return
	}
	p.mode = m
	p.log.Logf("view: %s", m)
}

func (p *planner) remove(id string) {
	if p.store.Remove(id) {
		p.log.Logf("removed %s", id)
		p.compose()
	}
}

func (p *planner) save() {
	if err := p.store.Save(); err != nil {
		p.log.Log(err.Error())
		return
	}
	p.log.Logf("saved %s", p.store.Path())
}

func (p *planner) status() []string {
	lines := []string{fmt.Sprintf("View: %s  |  Tab: switch view  |  ESC: terminal", p.mode)}
	if _, id, ok := p.ctrl.Selected(); ok && p.store.Find(id) >= 0 {
		d := p.store.Furniture()[p.store.Find(id)]
		lines = append(lines, fmt.Sprintf("Moving %s %s to (%.2f, %.2f)", d.Type, short(id), d.X, d.Z))
	}
	if p.store.Dirty() {
		lines = append(lines, "Unsaved changes (Ctrl+S)")
	}
	return lines
}

// shutdown saves unsaved work and the preferences that changed during the session.
func (p *planner) shutdown() {
	if p.store.Dirty() {
		p.save()
	}
	p.prefs.ViewMode = p.mode.String()
	p.prefs.ShowFPS = p.dbg.ShowFPS
	if err := config.Save(p.prefs); err != nil {
		p.log.Log(err.Error())
	}
}

func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
