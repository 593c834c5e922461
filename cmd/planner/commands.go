package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"room-planner/internal/camera"
	"room-planner/internal/commands"
	"room-planner/internal/furniture"
)

// registerCommands adds the terminal commands that act on p.
func registerCommands(reg *commands.Registry, p *planner) {
	reg.Register("help", "help", nil, func([]string) error {
		for _, line := range reg.Help() {
			p.log.Log("  " + line)
		}
		return nil
	})

	reg.Register("view", "view top|free", nil, func(args []string) error {
		if len(args) != 1 {
			return errors.New("usage: view top|free")
		}
		m, err := camera.ParseViewMode(args[0])
		if err != nil {
			return err
		}
		p.setMode(m)
		return nil
	})

	reg.Register("add", "add <type> [x z]", nil, func(args []string) error {
		if len(args) != 1 && len(args) != 3 {
			return errors.New("usage: add <type> [x z]")
		}
		t := furniture.Type(strings.ToLower(args[0]))
		if !p.reg.Has(t) {
			return fmt.Errorf("unknown type %q, known: %s", args[0], typeList(p.reg.Types()))
		}
		var x, z float32
		if len(args) == 3 {
			var err error
			if x, err = parseCoord(args[1]); err != nil {
				return err
			}
			if z, err = parseCoord(args[2]); err != nil {
				return err
			}
		}
		id := p.store.Add(t, x, z)
		p.log.Logf("added %s %s at (%.2f, %.2f)", t, short(id), x, z)
		p.compose()
		return nil
	})

	reg.Register("remove", "remove [id]  (no id: the piece being dragged)", nil, func(args []string) error {
		var id string
		switch len(args) {
		case 0:
			_, sel, ok := p.ctrl.Selected()
			if !ok {
				return errors.New("remove: nothing selected")
			}
			id = sel
		case 1:
			resolved, ok := p.store.Resolve(args[0])
			if !ok {
				return fmt.Errorf("remove: no single piece matches %q", args[0])
			}
			id = resolved
		default:
			return errors.New("usage: remove [id]")
		}
		p.remove(id)
		return nil
	})

	reg.Register("list", "list", nil, func([]string) error {
		items := p.store.Furniture()
		if len(items) == 0 {
			p.log.Log("  (no furniture)")
		}
		for i, d := range items {
			p.log.Logf("  %d  %s  %-9s (%.2f, %.2f)", i, short(d.ID), d.Type, d.X, d.Z)
		}
		return nil
	})

	reg.Register("save", "save", nil, func([]string) error {
		if err := p.store.Save(); err != nil {
			return err
		}
		p.log.Logf("saved %s", p.store.Path())
		return nil
	})

	roomFlags := flag.NewFlagSet("room", flag.ContinueOnError)
	width := roomFlags.Float64("width", 0, "room width")
	height := roomFlags.Float64("height", 0, "room height")
	depth := roomFlags.Float64("depth", 0, "room depth")
	color := roomFlags.String("color", "", "base color #rrggbb")
	reg.Register("room", "room [--width W] [--height H] [--depth D] [--color #rrggbb]", roomFlags, func([]string) error {
		defer func() { *width, *height, *depth, *color = 0, 0, 0, "" }()
		spec := p.store.Room()
		if *width > 0 {
			spec.Width = float32(*width)
		}
		if *height > 0 {
			spec.Height = float32(*height)
		}
		if *depth > 0 {
			spec.Depth = float32(*depth)
		}
		if *color != "" {
			spec.BaseColor = *color
		}
		p.store.SetRoom(spec)
		n := spec.Normalize()
		p.log.Logf("room %.1f x %.1f x %.1f %s", n.Width, n.Height, n.Depth, n.BaseColor)
		p.compose()
		return nil
	})

	fpsFlags := flag.NewFlagSet("fps", flag.ContinueOnError)
	show := fpsFlags.Bool("show", false, "show the FPS counter")
	hide := fpsFlags.Bool("hide", false, "hide the FPS counter")
	mem := fpsFlags.Bool("mem", false, "also show heap allocation")
	reg.Register("fps", "fps --show|--hide [--mem]", fpsFlags, func([]string) error {
		defer func() { *show, *hide, *mem = false, false, false }()
		switch {
		case *show && *hide:
			return errors.New("fps: --show and --hide are exclusive")
		case *show:
			p.dbg.SetShowFPS(true)
			p.dbg.SetShowMemAlloc(*mem)
		case *hide:
			p.dbg.SetShowFPS(false)
			p.dbg.SetShowMemAlloc(false)
		default:
			return errors.New("usage: fps --show|--hide [--mem]")
		}
		return nil
	})
}

func parseCoord(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("bad coordinate %q", s)
	}
	return float32(v), nil
}

func typeList(types []furniture.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
