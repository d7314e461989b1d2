package core

import (
	"strconv"

	"pedestriansense-go/errcode"
)

// Registry tracks which device owns each GPIO number. It is used while
// wiring at boot and is not safe for concurrent use.
type Registry struct {
	min, max int
	used     map[int]string // pin -> devID
}

// NewRegistry accepts pins in [min, max].
func NewRegistry(min, max int) *Registry {
	return &Registry{min: min, max: max, used: make(map[int]string)}
}

// Claim assigns every pin to devID, or none of them on error.
func (r *Registry) Claim(devID string, pins ...int) error {
	seen := make(map[int]bool, len(pins))
	for _, n := range pins {
		if n < r.min || n > r.max {
			return errcode.Wrap(errcode.UnknownPin, "claim "+devID, "gpio"+strconv.Itoa(n), nil)
		}
		if owner, inUse := r.used[n]; (inUse && owner != devID) || seen[n] {
			if !inUse {
				owner = devID
			}
			return errcode.Wrap(errcode.PinInUse, "claim "+devID, "gpio"+strconv.Itoa(n)+" held by "+owner, nil)
		}
		seen[n] = true
	}
	for _, n := range pins {
		r.used[n] = devID
	}
	return nil
}

// Release frees pins still held by devID.
func (r *Registry) Release(devID string, pins ...int) {
	for _, n := range pins {
		if owner, ok := r.used[n]; ok && owner == devID {
			delete(r.used, n)
		}
	}
}

func (r *Registry) Owner(pin int) (string, bool) {
	owner, ok := r.used[pin]
	return owner, ok
}
