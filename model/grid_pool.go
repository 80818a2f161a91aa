package model

import "sync"

// SnapshotPool recycles snapshot buffers between frames
type SnapshotPool struct {
	pool sync.Pool
}

func NewSnapshotPool() *SnapshotPool {
	return &SnapshotPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Snapshot{}
			},
		},
	}
}

// Take fills a pooled snapshot from the grid
func (p *SnapshotPool) Take(g *Grid) *Snapshot {
	s := p.pool.Get().(*Snapshot)
	g.SnapshotInto(s)
	return s
}

// Put returns a snapshot to the pool. The caller must not use it afterwards.
func (p *SnapshotPool) Put(s *Snapshot) {
	if s == nil {
		return
	}
	s.Generation = 0
	p.pool.Put(s)
}
