//go:build !(rp2040 || rp2350)

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"pedestriansense-go/errcode"
	"pedestriansense-go/services/crossing"
)

// Op is a scenario instruction.
type Op uint8

const (
	OpSet    Op = iota // set a=<cm|none> b=<cm|none>
	OpTick             // tick [n] [a=..] [b=..]
	OpExpect           // expect [mode=<m>] [alarm=on|off]
	OpSay              // say "text"
)

// Command is one parsed script line. Distances left nil are unchanged.
type Command struct {
	Line  int
	Op    Op
	Count int
	A, B  *crossing.Distance

	Mode  *crossing.Mode
	Alarm *bool
	Text  string
}

// Parse reads a scenario. Blank lines and lines starting with # are skipped.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words, err := shlex.Split(line)
		if err != nil {
			return nil, lineErr(n, err.Error())
		}
		if len(words) == 0 {
			continue
		}
		c, err := parseCommand(n, words)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, c)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cmds, nil
}

func parseCommand(n int, words []string) (Command, error) {
	c := Command{Line: n, Count: 1}
	args := words[1:]
	switch words[0] {
	case "set":
		c.Op = OpSet
		if len(args) == 0 {
			return c, lineErr(n, "set needs a= or b=")
		}
	case "tick":
		c.Op = OpTick
		if len(args) > 0 && !strings.Contains(args[0], "=") {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 1 {
				return c, lineErr(n, "bad tick count "+strconv.Quote(args[0]))
			}
			c.Count = v
			args = args[1:]
		}
	case "expect":
		c.Op = OpExpect
		if len(args) == 0 {
			return c, lineErr(n, "expect needs mode= or alarm=")
		}
	case "say":
		c.Op = OpSay
		c.Text = strings.Join(args, " ")
		return c, nil
	default:
		return c, lineErr(n, "unknown command "+strconv.Quote(words[0]))
	}

	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok {
			return c, lineErr(n, "want key=value, got "+strconv.Quote(a))
		}
		var err error
		switch {
		case k == "a" && c.Op != OpExpect:
			c.A, err = parseDistance(v)
		case k == "b" && c.Op != OpExpect:
			c.B, err = parseDistance(v)
		case k == "mode" && c.Op == OpExpect:
			c.Mode, err = parseMode(v)
		case k == "alarm" && c.Op == OpExpect:
			c.Alarm, err = parseOnOff(v)
		default:
			err = fmt.Errorf("unexpected %q", k)
		}
		if err != nil {
			return c, lineErr(n, err.Error())
		}
	}
	return c, nil
}

func parseDistance(v string) (*crossing.Distance, error) {
	d := crossing.OutOfRange
	if v != "none" {
		cm, err := strconv.ParseUint(v, 10, 32)
		if err != nil || crossing.Distance(cm) == crossing.OutOfRange {
			return nil, fmt.Errorf("bad distance %q", v)
		}
		d = crossing.Distance(cm)
	}
	return &d, nil
}

func parseMode(v string) (*crossing.Mode, error) {
	for _, m := range []crossing.Mode{crossing.Green, crossing.Yellow, crossing.Red} {
		if m.String() == v {
			return &m, nil
		}
	}
	return nil, fmt.Errorf("bad mode %q", v)
}

func parseOnOff(v string) (*bool, error) {
	var on bool
	switch v {
	case "on":
		on = true
	case "off":
	default:
		return nil, fmt.Errorf("bad alarm %q", v)
	}
	return &on, nil
}

func lineErr(n int, msg string) error {
	return errcode.Wrap(errcode.InvalidParams, "line "+strconv.Itoa(n), msg, nil)
}
