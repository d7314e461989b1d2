// Package crossing is the pedestrian-crossing signal controller.
//
// A Machine owns the vehicle Mode and its elapsed seconds, a PresenceFilter
// turns two range readings into a per-tick presence sample, and a Scheduler
// runs both once per tick. Hardware is reached only through the RangeSensor
// and OutputPanel interfaces, and every wait goes through a timex.Sleeper,
// so the whole controller runs on the host against fakes.
package crossing
