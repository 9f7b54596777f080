package astar

// Expansion describes one node taken off the open list.
type Expansion struct {
	Step     int
	Cell     Cell
	G        float64
	H        float64
	F        float64
	OpenSize int
	Visited  int
}

// Observer is notified after every expansion. It exists for renderers and
// tracing; it cannot influence the search.
type Observer interface {
	OnExpand(expansion Expansion)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(expansion Expansion)

func (f ObserverFunc) OnExpand(expansion Expansion) { f(expansion) }
