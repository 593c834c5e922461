package layout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"room-planner/internal/furniture"
	"room-planner/internal/picking"
	"room-planner/internal/room"
)

type memLog struct {
	lines []string
}

func (m *memLog) Log(line string) { m.lines = append(m.lines, line) }

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "room.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingUsesDefault(t *testing.T) {
	log := &memLog{}
	s, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), log)
	if err != nil {
		t.Fatal(err)
	}
	if s.Room() != room.Default() {
		t.Errorf("room = %+v", s.Room())
	}
	if len(s.Furniture()) == 0 {
		t.Error("default layout should be furnished")
	}
	for _, d := range s.Furniture() {
		if d.ID == "" {
			t.Errorf("default piece without id: %+v", d)
		}
	}
	if len(log.lines) != 1 {
		t.Errorf("log = %v", log.lines)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	path := writeFile(t, `
room:
  width: 12
  height: 3
  depth: 8
  base_color: "#eeeeee"
furniture:
  - id: sofa-1
    type: sofa
    x: 1.5
    z: -2
    shade: 0
  - id: lamp-1
    type: lamp
    scale: 1.5
    color: "#ff8800"
`)
	s, err := Load(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Room().Width != 12 || s.Room().WallTexture != "" {
		t.Errorf("room = %+v", s.Room())
	}
	f := s.Furniture()
	if len(f) != 2 {
		t.Fatalf("furniture = %+v", f)
	}
	if f[0].Type != furniture.Sofa || f[0].X != 1.5 || f[0].Z != -2 {
		t.Errorf("sofa = %+v", f[0])
	}
	if f[0].Shade == nil || *f[0].Shade != 0 {
		t.Errorf("explicit zero shade lost: %+v", f[0].Shade)
	}
	if f[0].Scale != nil {
		t.Errorf("missing scale should stay nil, got %v", *f[0].Scale)
	}
	if f[1].Scale == nil || *f[1].Scale != 1.5 || f[1].Color != "#ff8800" {
		t.Errorf("lamp = %+v", f[1])
	}
	if s.Dirty() {
		t.Error("clean file reported dirty")
	}
}

func TestLoadAssignsIDs(t *testing.T) {
	path := writeFile(t, `
furniture:
  - type: chair
  - id: dup
    type: bed
  - id: dup
    type: table
    color: blue
`)
	log := &memLog{}
	s, err := Load(path, log)
	if err != nil {
		t.Fatal(err)
	}
	f := s.Furniture()
	if f[0].ID == "" {
		t.Error("missing id not assigned")
	}
	if f[1].ID != "dup" || f[2].ID == "dup" {
		t.Errorf("duplicate ids not resolved: %q %q", f[1].ID, f[2].ID)
	}
	if !s.Dirty() {
		t.Error("assigned ids should mark the layout dirty")
	}
	var sawColor bool
	for _, l := range log.lines {
		if strings.Contains(l, `"blue"`) {
			sawColor = true
		}
	}
	if !sawColor {
		t.Errorf("bad color not reported: %v", log.lines)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := writeFile(t, "furniture: [\n")
	if _, err := Load(path, nil); err == nil {
		t.Error("expected parse error")
	}
}

func TestApplyAddRemove(t *testing.T) {
	s, _ := Load(filepath.Join(t.TempDir(), "room.yaml"), nil)
	id := s.Add(furniture.Bookshelf, 1, 2)
	i := s.Find(id)
	if i != len(s.Furniture())-1 {
		t.Fatalf("new piece at %d", i)
	}

	x, z := float32(-4), float32(3.5)
	s.Apply(i, picking.Partial{X: &x, Z: &z})
	if d := s.Furniture()[i]; d.X != -4 || d.Z != 3.5 {
		t.Errorf("after apply: %+v", d)
	}
	s.Apply(i, picking.Partial{X: &z})
	if d := s.Furniture()[i]; d.X != 3.5 || d.Z != 3.5 {
		t.Errorf("partial apply: %+v", d)
	}
	s.Apply(99, picking.Partial{X: &x}) // ignored

	if !s.Remove(id) || s.Find(id) != -1 {
		t.Error("remove failed")
	}
	if s.Remove(id) {
		t.Error("second remove should report false")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layouts", "room.yaml")
	s, _ := Load(path, nil)
	id := s.Add(furniture.Bed, 2, -1)
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}
	if s.Dirty() {
		t.Error("dirty after save")
	}
	again, err := Load(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	i := again.Find(id)
	if i < 0 {
		t.Fatalf("saved piece %s missing", id)
	}
	if d := again.Furniture()[i]; d.Type != furniture.Bed || d.X != 2 || d.Z != -1 {
		t.Errorf("reloaded %+v", d)
	}
	if len(again.Furniture()) != len(s.Furniture()) {
		t.Errorf("reloaded %d pieces, saved %d", len(again.Furniture()), len(s.Furniture()))
	}
}

func TestResolvePrefix(t *testing.T) {
	path := writeFile(t, `
furniture:
  - id: abc123
    type: chair
  - id: abd456
    type: lamp
`)
	s, err := Load(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	for ref, want := range map[string]string{"abc123": "abc123", "abc": "abc123", "abd": "abd456"} {
		if got, ok := s.Resolve(ref); !ok || got != want {
			t.Errorf("Resolve(%q) = %q %v, want %q", ref, got, ok, want)
		}
	}
	for _, ref := range []string{"ab", "zz", ""} {
		if got, ok := s.Resolve(ref); ok {
			t.Errorf("Resolve(%q) = %q, want no match", ref, got)
		}
	}
}
