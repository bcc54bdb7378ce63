package source

import (
	"context"
	"io"
	"sync"

	"github.com/arloliu/hype/types"
)

// Static implements an element source over a fixed list of elements.
type Static struct {
	mu       sync.Mutex
	elements []types.Element
	pos      int
}

var _ types.ElementSource = (*Static)(nil)

// NewStatic creates a new static element source.
//
// The source returns the elements in order, then io.EOF. Useful for testing
// and for callers that already hold the hypergraph in memory.
//
// Parameters:
//   - elements: Elements in arrival order
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic([]types.Element{
//	    {Node: 1, Edges: []uint64{10, 11}},
//	    {Node: 2, Edges: []uint64{10}},
//	    {Node: 3},
//	})
//	n, err := s.Consume(ctx, src, 0.05)
func NewStatic(elements []types.Element) *Static {
	return &Static{
		elements: elements,
	}
}

// Next returns the next element.
//
// Returns:
//   - types.Element: Next element in order
//   - error: io.EOF after the last element, ctx.Err() if the context is done
func (s *Static) Next(ctx context.Context) (types.Element, error) {
	if err := ctx.Err(); err != nil {
		return types.Element{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos >= len(s.elements) {
		return types.Element{}, io.EOF
	}

	elem := s.elements[s.pos]
	s.pos++

	return elem, nil
}

// Len returns the number of elements not yet returned by Next.
func (s *Static) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.elements) - s.pos
}

// Reset rewinds the source so Next starts again from the first element.
func (s *Static) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pos = 0
}

// Update replaces the element list and rewinds the source.
//
// Parameters:
//   - elements: New elements in arrival order
//
// Example:
//
//	src := source.NewStatic(firstRun)
//	// Later: replay a different stream
//	src.Update(secondRun)
func (s *Static) Update(elements []types.Element) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.elements = make([]types.Element, len(elements))
	copy(s.elements, elements)
	s.pos = 0
}
