package main

import (
	"path/filepath"
	"strings"
	"testing"

	"room-planner/internal/camera"
	"room-planner/internal/commands"
	"room-planner/internal/config"
	"room-planner/internal/debug"
	"room-planner/internal/furniture"
	"room-planner/internal/layout"
	"room-planner/internal/logger"
	"room-planner/internal/picking"
	"room-planner/internal/scene"
	"room-planner/internal/terminal"
)

func newPlanner(t *testing.T) (*planner, *terminal.Terminal) {
	t.Helper()
	log := logger.New("")
	store, err := layout.Load(filepath.Join(t.TempDir(), "room.yaml"), log)
	if err != nil {
		t.Fatal(err)
	}
	reg := furniture.NewRegistry()
	p := &planner{
		prefs:    config.Default(),
		log:      log,
		store:    store,
		reg:      reg,
		ctrl:     picking.New(store.Apply, picking.Options{}),
		dbg:      debug.New(),
		composer: scene.New(reg, camera.NewRig(), log),
		mode:     camera.Free,
	}
	p.compose()
	cmds := commands.NewRegistry()
	registerCommands(cmds, p)
	return p, terminal.New(log, cmds)
}

func lastLine(p *planner) string {
	lines := p.log.Lines()
	return lines[len(lines)-1]
}

func TestAddAndRemove(t *testing.T) {
	p, term := newPlanner(t)
	n := len(p.store.Furniture())

	term.Submit("add bookshelf 2 -1.5")
	items := p.store.Furniture()
	if len(items) != n+1 {
		t.Fatalf("%d pieces after add", len(items))
	}
	added := items[n]
	if added.Type != furniture.Bookshelf || added.X != 2 || added.Z != -1.5 {
		t.Errorf("added %+v", added)
	}
	if len(p.frame.Order) != n+1 {
		t.Error("frame not recomposed after add")
	}

	term.Submit("add piano")
	if !strings.Contains(lastLine(p), "unknown type") {
		t.Errorf("last line %q", lastLine(p))
	}
	term.Submit("add chair x 1")
	if !strings.Contains(lastLine(p), "bad coordinate") {
		t.Errorf("last line %q", lastLine(p))
	}

	term.Submit("remove " + added.ID[:12])
	if p.store.Find(added.ID) >= 0 {
		t.Error("piece still present")
	}
	term.Submit("remove")
	if !strings.Contains(lastLine(p), "nothing selected") {
		t.Errorf("last line %q", lastLine(p))
	}
}

func TestViewCommand(t *testing.T) {
	p, term := newPlanner(t)
	term.Submit("view top")
	if p.mode != camera.TopDown {
		t.Errorf("mode = %v", p.mode)
	}
	p.compose()
	if p.frame.Camera.Mode != camera.TopDown {
		t.Error("camera not switched")
	}
	term.Submit("view sideways")
	if p.mode != camera.TopDown {
		t.Error("bad mode changed the view")
	}
}

func TestRoomAndFPS(t *testing.T) {
	p, term := newPlanner(t)
	term.Submit("room --width 12 --color #eeeeee")
	r := p.store.Room()
	if r.Width != 12 || r.BaseColor != "#eeeeee" || r.Depth != 10 {
		t.Errorf("room = %+v", r)
	}
	term.Submit("room --depth 8")
	if r := p.store.Room(); r.Width != 12 || r.Depth != 8 {
		t.Errorf("room = %+v", r)
	}
	if p.frame.Camera.Mode != camera.Free || p.frame.Room.Depth != 8 {
		t.Errorf("frame room = %+v", p.frame.Room)
	}

	term.Submit("fps --show --mem")
	if !p.dbg.ShowFPS || !p.dbg.ShowMemAlloc {
		t.Error("fps not shown")
	}
	term.Submit("fps --hide")
	if p.dbg.ShowFPS || p.dbg.ShowMemAlloc {
		t.Error("fps not hidden")
	}
	term.Submit("fps")
	if !strings.Contains(lastLine(p), "usage") {
		t.Errorf("last line %q", lastLine(p))
	}
}

func TestSaveAndList(t *testing.T) {
	p, term := newPlanner(t)
	term.Submit("list")
	if got := len(p.log.Lines()); got < len(p.store.Furniture()) {
		t.Errorf("list printed %d lines", got)
	}
	term.Submit("save")
	if p.store.Dirty() {
		t.Error("still dirty after save")
	}
	if !strings.Contains(lastLine(p), "saved") {
		t.Errorf("last line %q", lastLine(p))
	}
}
