package textures

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCandidatesOrder(t *testing.T) {
	got := Candidates("assets", "textures/floor.jpg")
	want := []string{
		filepath.Join("assets", "textures", "floor.jpg"),
		filepath.Join("..", "..", "assets", "textures", "floor.jpg"),
		filepath.Join("textures", "floor.jpg"),
		filepath.Join("..", "..", "textures", "floor.jpg"),
	}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCandidatesWithoutRoot(t *testing.T) {
	if got := Candidates("", "/textures/wall.jpg"); len(got) != 2 || got[0] != filepath.Join("textures", "wall.jpg") {
		t.Errorf("got %v", got)
	}
	if got := Candidates("assets", ""); got != nil {
		t.Errorf("empty id: %v", got)
	}
}

func TestFindOnDisk(t *testing.T) {
	root := t.TempDir()
	p := filepath.Join(root, "textures", "wall.jpg")
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	got, ok := Find(root, "textures/wall.jpg", fileExists)
	if !ok || got != p {
		t.Errorf("Find = %q %v, want %q", got, ok, p)
	}
	if _, ok := Find(root, "textures/none.jpg", fileExists); ok {
		t.Error("found a missing texture")
	}
}

func TestFindPrefersRoot(t *testing.T) {
	seen := map[string]bool{
		filepath.Join("assets", "textures", "floor.jpg"): true,
		filepath.Join("textures", "floor.jpg"):           true,
	}
	got, ok := Find("assets", "textures/floor.jpg", func(p string) bool { return seen[p] })
	if !ok || got != filepath.Join("assets", "textures", "floor.jpg") {
		t.Errorf("Find = %q", got)
	}
}
