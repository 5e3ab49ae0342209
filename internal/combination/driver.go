package combination

import (
	"fmt"

	"github.com/alexiusacademia/gocomb/internal/hierarchy"
	"go.uber.org/zap"
)

// Sink receives the top level combinations of each pass. The weighting
// step implements it.
type Sink interface {
	Consume(pass Pass, top []Combination) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(pass Pass, top []Combination) error

func (f SinkFunc) Consume(pass Pass, top []Combination) error {
	return f(pass, top)
}

// Stats summarises a driver run.
type Stats struct {
	Passes    int
	Forwarded int // combinations handed to the sink, summed over passes
	Arena     int // largest arena size reached by a pass
}

// Run drives one generation pass per action of the catalog. In each pass
// the driving action is predominant if it is variable, every level is
// regenerated and the top level combinations are forwarded to sink.
//
// Run is the only way to refresh results after an edit of the hierarchy
// or of the catalog.
func Run(catalog Catalog, h *hierarchy.Hierarchy, sink Sink, log *zap.Logger) (Stats, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var stats Stats
	gen := NewGenerator(h, catalog, log)
	defer gen.Reset()

	for i, a := range catalog.Actions() {
		pass := NewPass(i, a)
		gen.Generate(pass)
		top := gen.Top()

		stats.Passes++
		stats.Forwarded += len(top)
		if n := gen.Size(); n > stats.Arena {
			stats.Arena = n
		}
		log.Debug("pass generated",
			zap.Int("pass", i),
			zap.String("action", a.Name),
			zap.Bool("predominant", pass.Predominant != ""),
			zap.Int("top", len(top)))

		if sink == nil {
			continue
		}
		if err := sink.Consume(pass, top); err != nil {
			return stats, fmt.Errorf("pass %d (%s): %w", i, a.Name, err)
		}
	}
	return stats, nil
}
