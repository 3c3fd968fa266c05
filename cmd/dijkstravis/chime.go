package main

// chime plays a short tone when a path is found. A zero chime is silent.
type chime struct {
	ready bool
}
