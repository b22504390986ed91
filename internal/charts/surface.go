package charts

import (
	"fmt"
	"regexp"
	"sort"
	"sync"
)

var surfaceIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,127}$`)

// Surface is a drawable target identified by id. It holds at most one chart.
type Surface struct {
	ID     string
	Width  int
	Height int

	mu    sync.RWMutex
	chart *Chart
}

// Chart returns the chart currently bound to the surface, or nil.
func (s *Surface) Chart() *Chart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chart
}

// bind attaches c and returns the chart it replaced, if any.
func (s *Surface) bind(c *Chart) *Chart {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.chart
	s.chart = c
	return prev
}

// Document is the set of surfaces charts can be drawn on.
type Document struct {
	mu       sync.RWMutex
	surfaces map[string]*Surface
	width    int
	height   int
}

// NewDocument creates an empty document whose surfaces default to width x height pixels.
func NewDocument(width, height int) *Document {
	return &Document{
		surfaces: make(map[string]*Surface),
		width:    width,
		height:   height,
	}
}

// AddSurface registers a surface with the default size. Adding an existing id
// returns the surface already registered.
func (d *Document) AddSurface(id string) (*Surface, error) {
	return d.AddSurfaceSized(id, d.width, d.height)
}

// AddSurfaceSized registers a surface with an explicit size.
func (d *Document) AddSurfaceSized(id string, width, height int) (*Surface, error) {
	if !surfaceIDPattern.MatchString(id) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSurfaceID, id)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface %q: size must be positive, got %dx%d", id, width, height)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if s, ok := d.surfaces[id]; ok {
		return s, nil
	}
	s := &Surface{ID: id, Width: width, Height: height}
	d.surfaces[id] = s
	return s, nil
}

// Lookup returns the surface with the given id.
func (d *Document) Lookup(id string) (*Surface, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s, ok := d.surfaces[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSurfaceNotFound, id)
	}
	return s, nil
}

// Remove drops a surface and whatever chart it holds.
func (d *Document) Remove(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.surfaces[id]
	delete(d.surfaces, id)
	return ok
}

// Surfaces lists all surfaces sorted by id.
func (d *Document) Surfaces() []*Surface {
	d.mu.RLock()
	out := make([]*Surface, 0, len(d.surfaces))
	for _, s := range d.surfaces {
		out = append(out, s)
	}
	d.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Charts lists the charts bound to surfaces, sorted by surface id.
func (d *Document) Charts() []*Chart {
	var out []*Chart
	for _, s := range d.Surfaces() {
		if c := s.Chart(); c != nil {
			out = append(out, c)
		}
	}
	return out
}
