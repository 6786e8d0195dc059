// Package engine contains the tandem-repeat candidate core: probe index,
// distance windows, detector, refiner and overlap resolver. It never imports
// app, writers, cli, or pipeline; keep it domain-only.
//
// A pass over one probe length is strictly sequential: the probe history and
// the windows must observe positions in increasing order. Independent probe
// lengths run concurrently, each with its own state.
package engine
