// Package demo drives the character from a tengo script instead of
// the keyboard, for an unattended attract mode. The script sees a
// `frame` integer and must leave `dir` (a compass name), `dash`, and
// `jump` globals behind each run.
package demo

import (
	_ "embed"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/dashkid/character"
)

//go:embed patrol.tengo
var patrolScript string

// DefaultScript is the embedded attract-mode script: a patrol square
// with periodic dashes and hops.
func DefaultScript() string { return patrolScript }

// Driver is a character input source backed by a compiled script. It
// satisfies the same Sample contract as the keyboard sampler.
type Driver struct {
	compiled *tengo.Compiled
	frame    int
}

// New compiles the script once; Sample re-runs the compiled program
// with the current frame number.
func New(src string) (*Driver, error) {
	script := tengo.NewScript([]byte(src))
	if err := script.Add("frame", 0); err != nil {
		return nil, fmt.Errorf("demo: add frame: %w", err)
	}
	script.SetImports(stdlib.GetModuleMap("math", "rand"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("demo: compile: %w", err)
	}
	// warm-up run so the script's own globals exist and early errors
	// surface at startup instead of mid-session
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("demo: first run: %w", err)
	}
	for _, name := range []string{"dir", "dash", "jump"} {
		if !compiled.IsDefined(name) {
			return nil, fmt.Errorf("demo: script defines no %q global", name)
		}
	}
	return &Driver{compiled: compiled}, nil
}

// Sample runs the script for the next frame. A script runtime error
// degrades to no input rather than stopping the app.
func (d *Driver) Sample() character.Sample {
	if err := d.compiled.Set("frame", d.frame); err != nil {
		d.frame++
		return character.Sample{}
	}
	d.frame++
	if err := d.compiled.Run(); err != nil {
		return character.Sample{}
	}
	return character.Sample{
		Direction: character.ParseDirection(d.compiled.Get("dir").String()),
		Dash:      d.compiled.Get("dash").Bool(),
		Jump:      d.compiled.Get("jump").Bool(),
	}
}
