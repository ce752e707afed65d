// Command tangent prints the circles tangent to circles and lines given on
// the command line.
//
// A circle is written x,y,r and a line x,y,dx,dy. With three primitives,
// tangent prints every circle touching all of them; with two primitives and
// -r, every circle of that radius touching both.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/tdewolff/argp"

	"honnef.co/go/tangent"
)

type Solve struct {
	Radius   float64 `short:"r" default:"0" desc:"Radius of the tangent circles, for two primitives"`
	Capacity int     `short:"n" default:"0" desc:"Maximum number of solutions, 0 for all"`
	Verbose  bool    `short:"v" desc:"Log degenerate configurations to stderr"`
	A        string  `index:"0" desc:"First primitive"`
	B        string  `index:"1" desc:"Second primitive"`
	C        string  `index:"2" desc:"Third primitive"`
}

func main() {
	root := argp.NewCmd(&Solve{}, "Tangent circles of circles (x,y,r) and lines (x,y,dx,dy)")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Solve) Run() error {
	if cmd.A == "" || cmd.B == "" {
		return argp.ShowUsage
	}
	if cmd.Verbose {
		tangent.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	return cmd.run(os.Stdout)
}

func (cmd *Solve) run(w io.Writer) error {
	a, err := parsePrimitive(cmd.A)
	if err != nil {
		return err
	}
	b, err := parsePrimitive(cmd.B)
	if err != nil {
		return err
	}

	sv := tangent.Solver{Capacity: cmd.Capacity}
	var set tangent.SolutionSet
	if cmd.C == "" {
		if cmd.Radius <= 0 {
			return fmt.Errorf("two primitives need a positive radius, got %g", cmd.Radius)
		}
		set = sv.TangentWithRadius(a, b, cmd.Radius)
	} else {
		c, err := parsePrimitive(cmd.C)
		if err != nil {
			return err
		}
		set = sv.Tangent(a, b, c)
	}

	for sol := range set.All() {
		if _, err := fmt.Fprintln(w, sol); err != nil {
			return err
		}
	}
	return nil
}

// parsePrimitive parses a circle written x,y,r or a line written x,y,dx,dy.
func parsePrimitive(s string) (tangent.Primitive, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 && len(fields) != 4 {
		return tangent.Primitive{}, fmt.Errorf("primitive %q: expected x,y,r or x,y,dx,dy", s)
	}
	var vs [4]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return tangent.Primitive{}, fmt.Errorf("primitive %q: %w", s, err)
		}
		vs[i] = v
	}

	pt := tangent.Pt(vs[0], vs[1])
	if len(fields) == 3 {
		return tangent.CirclePrimitive(tangent.Circle{Center: pt, Radius: vs[2]}), nil
	}
	dir := tangent.Vec(vs[2], vs[3])
	if dir == (tangent.Vec2{}) {
		return tangent.Primitive{}, fmt.Errorf("primitive %q: line direction is zero", s)
	}
	return tangent.LinePrimitive(tangent.Line{Point: pt, Direction: dir}), nil
}
