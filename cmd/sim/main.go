//go:build !(rp2040 || rp2350)

// Command sim runs the crossing controller against a scripted scenario on
// a virtual clock.
//
//	say "pedestrian arrives"
//	tick 3 a=none b=4
//	expect mode=yellow alarm=on
package main

import (
	"flag"
	"io"
	"os"

	"pedestriansense-go/services/banner"
	"pedestriansense-go/services/hal/platform"
	"pedestriansense-go/x/logx"
)

func main() {
	script := flag.String("script", "-", "scenario file, - for stdin")
	verbose := flag.Bool("v", false, "log every tick")
	flag.Parse()

	if err := run(*script, *verbose, os.Stdout); err != nil {
		logx.New(os.Stderr, logx.LevelError).Named("sim").Errorf("%v", err)
		os.Exit(1)
	}
}

func run(path string, verbose bool, out io.Writer) error {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	cmds, err := Parse(in)
	if err != nil {
		return err
	}

	_ = banner.Print(out, banner.Default(platform.Name))
	level := logx.LevelInfo
	if verbose {
		level = logx.LevelDebug
	}
	sim, err := NewSim(out, level)
	if err != nil {
		return err
	}
	return sim.Run(cmds)
}
