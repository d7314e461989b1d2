//go:build linux && rpi && !(rp2040 || rp2350)

package setups

// Selected is the plan for the build target.
var Selected = RaspberryPi
