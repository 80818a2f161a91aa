package model

import "github.com/furkankly/goffin/rules"

// Cell is a single grid position tagged with the phase decided by the last
// neighbor sweep. WillSpawn is only meaningful for rules.PhaseMid.
type Cell struct {
	Phase     rules.Phase
	Alive     bool
	WillSpawn bool
}

// Resolve applies the transition predetermined by the cell's phase
func (c Cell) Resolve() Cell {
	switch c.Phase {
	case rules.PhaseLow, rules.PhaseHigh:
		c.Alive = false
	case rules.PhaseMid:
		if c.WillSpawn {
			c.Alive = true
		}
	}
	return c
}

// Reclassify replaces the phase and spawn flag for the given neighbor count,
// keeping Alive as is.
func (c Cell) Reclassify(neighbors int) Cell {
	c.Phase, c.WillSpawn = rules.Classify(c.Alive, neighbors)
	return c
}
