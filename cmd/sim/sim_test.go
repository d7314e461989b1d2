//go:build !(rp2040 || rp2350)

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"pedestriansense-go/errcode"
	"pedestriansense-go/services/crossing"
	"pedestriansense-go/x/logx"
)

func TestParse(t *testing.T) {
	cmds, err := Parse(strings.NewReader(`
# comment
say "pedestrian arrives"
tick
tick 3 a=4 b=none
set b=12
expect mode=yellow alarm=on
`))
	require.NoError(t, err)
	require.Len(t, cmds, 5)

	require.Equal(t, OpSay, cmds[0].Op)
	require.Equal(t, "pedestrian arrives", cmds[0].Text)
	require.Equal(t, 3, cmds[0].Line)

	require.Equal(t, OpTick, cmds[1].Op)
	require.Equal(t, 1, cmds[1].Count)
	require.Nil(t, cmds[1].A)

	require.Equal(t, 3, cmds[2].Count)
	require.Equal(t, crossing.Distance(4), *cmds[2].A)
	require.Equal(t, crossing.OutOfRange, *cmds[2].B)

	require.Equal(t, OpSet, cmds[3].Op)
	require.Nil(t, cmds[3].A)
	require.Equal(t, crossing.Distance(12), *cmds[3].B)

	require.Equal(t, crossing.Yellow, *cmds[4].Mode)
	require.True(t, *cmds[4].Alarm)
}

func TestParse_Errors(t *testing.T) {
	for _, src := range []string{
		"jump",
		"tick 0",
		"tick x",
		"set",
		"set a=far",
		"tick c=3",
		"expect",
		"expect mode=blue",
		"expect alarm=maybe",
		"expect a=3",
		`say "unterminated`,
	} {
		_, err := Parse(strings.NewReader(src))
		require.Error(t, err, src)
	}
	_, err := Parse(strings.NewReader("tick\njump"))
	require.Equal(t, errcode.InvalidParams, errcode.Of(err))
	require.Contains(t, err.Error(), "line 2")
}

const fullCycle = `
tick 2
tick a=3
expect mode=green alarm=off
tick
expect mode=yellow alarm=on
tick 9 a=none
expect mode=yellow alarm=off
tick
expect mode=red
tick 2 b=4
expect mode=red alarm=on
tick 59 b=none
expect mode=red alarm=off
tick
expect mode=green alarm=off
`

func TestSim_FullCycle(t *testing.T) {
	cmds, err := Parse(strings.NewReader(fullCycle))
	require.NoError(t, err)

	var out bytes.Buffer
	sim, err := NewSim(&out, logx.LevelInfo)
	require.NoError(t, err)
	require.NoError(t, sim.Run(cmds))

	log := out.String()
	require.Contains(t, log, "green -> yellow")
	require.Contains(t, log, "yellow -> red")
	require.Contains(t, log, "red -> green")
	require.Contains(t, log, "alarm on")
}

func TestSim_FailedExpectation(t *testing.T) {
	cmds, err := Parse(strings.NewReader("tick 5\nexpect mode=red"))
	require.NoError(t, err)

	sim, err := NewSim(&bytes.Buffer{}, logx.LevelError)
	require.NoError(t, err)
	err = sim.Run(cmds)
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2 expect")
	require.Contains(t, err.Error(), "mode is green, want red")
}

func TestRun_FromFile(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, run("does-not-exist.txt", false, &out))
}
