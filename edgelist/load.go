package edgelist

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
)

// DefaultWeight is the weight given to two-value rows.
const DefaultWeight = 1.0

// Loader is the graph surface Load writes into. *matrix.Graph satisfies it.
type Loader interface {
	AddEdge(a, b string, w float64) error
	AddEdgeIdx(a, b int, w float64) error
}

// Stats summarizes a Load call.
type Stats struct {
	Rows  int // data rows consumed
	Edges int // rows that produced an edge
}

// Option configures Load.
type Option func(*options)

type options struct {
	weight    float64
	indexMode bool
	logger    *slog.Logger
}

// WithDefaultWeight sets the weight used for "a b" rows.
func WithDefaultWeight(w float64) Option {
	return func(o *options) { o.weight = w }
}

// WithIndexMode uses row values as indices (AddEdgeIdx) instead of labels.
func WithIndexMode() Option {
	return func(o *options) { o.indexMode = true }
}

// WithLogger reports progress at Debug level to l. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("edgelist: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// Load reads every row from r and inserts it into g. It stops at the first
// malformed row or rejected insertion; rows before it stay inserted.
func Load(g Loader, r io.Reader, opts ...Option) (Stats, error) {
	o := options{weight: DefaultWeight, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	var st Stats
	rd := NewReader(r)
	for {
		row, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return st, err
		}
		st.Rows++

		if err := o.insert(g, row); err != nil {
			return st, fmt.Errorf("edgelist: line %d: %w", rd.Line(), err)
		}
		st.Edges++
	}
	o.logger.Debug("edge list loaded", "rows", st.Rows, "edges", st.Edges, "index_mode", o.indexMode)

	return st, nil
}

// insert applies one row.
func (o options) insert(g Loader, row []uint64) error {
	if len(row) != 2 && len(row) != 3 {
		return fmt.Errorf("%d values: %w", len(row), ErrBadArity)
	}
	w := o.weight
	if len(row) == 3 {
		w = float64(row[2])
	}

	if !o.indexMode {
		return g.AddEdge(strconv.FormatUint(row[0], 10), strconv.FormatUint(row[1], 10), w)
	}
	if row[0] > math.MaxInt || row[1] > math.MaxInt {
		return fmt.Errorf("%d %d: %w", row[0], row[1], ErrIndexOverflow)
	}

	return g.AddEdgeIdx(int(row[0]), int(row[1]), w)
}
