package textures

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"room-planner/internal/scene"
)

// Fallback is loaded in place of any id whose file cannot be found or decoded.
const Fallback = "textures/default.png"

// Candidates returns the paths tried for id, in order, so textures are found whether the planner
// runs from the repo root or from cmd/planner.
func Candidates(root, id string) []string {
	id = strings.TrimPrefix(path.Clean(filepath.ToSlash(id)), "/")
	if id == "" || id == "." {
		return nil
	}
	var out []string
	if root != "" {
		out = append(out, filepath.Join(root, id), filepath.Join("..", "..", root, id))
	}
	return append(out, filepath.FromSlash(id), filepath.Join("..", "..", id))
}

// Find returns the first candidate for id that exists according to exists.
func Find(root, id string, exists func(string) bool) (string, bool) {
	for _, p := range Candidates(root, id) {
		if exists(p) {
			return p, true
		}
	}
	return "", false
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// Cache loads textures by id on first use and keeps them until Unload. Loading happens on the
// render thread after the window exists.
type Cache struct {
	root   string
	log    scene.Logger
	loaded map[string]rl.Texture2D
	failed map[string]bool
}

// NewCache returns an empty cache resolving ids under root. log may be nil.
func NewCache(root string, log scene.Logger) *Cache {
	return &Cache{
		root:   root,
		log:    log,
		loaded: make(map[string]rl.Texture2D),
		failed: make(map[string]bool),
	}
}

// Get returns the texture for id, loading it if needed. A missing id resolves to Fallback;
// ok is false when neither can be loaded, and the caller should draw untextured.
func (c *Cache) Get(id string) (rl.Texture2D, bool) {
	if tex, ok := c.load(id); ok {
		return tex, true
	}
	if id == Fallback {
		return rl.Texture2D{}, false
	}
	return c.load(Fallback)
}

func (c *Cache) load(id string) (rl.Texture2D, bool) {
	if tex, ok := c.loaded[id]; ok {
		return tex, true
	}
	if c.failed[id] || id == "" {
		return rl.Texture2D{}, false
	}
	p, ok := Find(c.root, id, fileExists)
	if !ok {
		c.fail(id, "textures: %s not found", id)
		return rl.Texture2D{}, false
	}
	tex := rl.LoadTexture(p)
	if !rl.IsTextureValid(tex) {
		c.fail(id, "textures: %s could not be decoded", p)
		return rl.Texture2D{}, false
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	rl.SetTextureWrap(tex, rl.WrapRepeat)
	c.loaded[id] = tex
	return tex, true
}

// fail marks id so the lookup and the log line happen once per id.
func (c *Cache) fail(id, format string, args ...any) {
	c.failed[id] = true
	if c.log != nil {
		c.log.Log(fmt.Sprintf(format, args...))
	}
}

// Unload frees every loaded texture.
func (c *Cache) Unload() {
	for id, tex := range c.loaded {
		rl.UnloadTexture(tex)
		delete(c.loaded, id)
	}
}
