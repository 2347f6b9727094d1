package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth      int
	Goroutines int
	Duration   time.Duration
	Nodes      int // States visited, root included
	Candidates int // Fully specified moves at the root
	Ties       int // Root moves sharing the best score
	Score      int
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	ID         string
	White      string // Provider name
	Black      string // Provider name
	Result     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(depth, goroutines int)
	AddNode()
	SetRoot(candidates int)
	Complete(score, ties int) SearchMetric
}

type collector struct {
	depth      int
	goroutines int
	startTime  time.Time
	nodes      atomic.Int64
	candidates atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth, goroutines int) {
	m.startTime = time.Now()
	m.depth = depth
	m.goroutines = goroutines
	m.nodes.Store(0)
	m.candidates.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) SetRoot(candidates int) {
	m.candidates.Store(int32(candidates))
}

func (m *collector) Complete(score, ties int) SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Candidates: int(m.candidates.Load()),
		Ties:       ties,
		Score:      score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, goroutines int)           {}
func (m *dummyCollector) AddNode()                              {}
func (m *dummyCollector) SetRoot(candidates int)                {}
func (m *dummyCollector) Complete(score, ties int) SearchMetric { return SearchMetric{} }
