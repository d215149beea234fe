package forcing

import (
	"context"
	"fmt"
	"sort"
)

// Source produces daily temperature and salinity for a simulation horizon.
type Source interface {
	Name() string
	Load(ctx context.Context, years int) (*Series, error)
}

// SourceParams configures a source created through the Registry.
type SourceParams struct {
	Dataset string
	Prefix  string
}

type Registry struct {
	sources map[string]func(SourceParams) Source
}

func NewRegistry() *Registry {
	r := &Registry{sources: make(map[string]func(SourceParams) Source)}

	r.sources["seasonal"] = func(SourceParams) Source { return NewSeasonal() }
	r.sources["historical"] = func(p SourceParams) Source { return NewHistorical(p.Dataset, p.Prefix) }

	return r
}

func (r *Registry) Register(name string, fn func(SourceParams) Source) {
	r.sources[name] = fn
}

func (r *Registry) GetSource(name string, params SourceParams) (Source, error) {
	fn, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown forcing source: %s (available: %v)", name, r.ListSources())
	}
	return fn(params), nil
}

func (r *Registry) ListSources() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func totalDays(years int) (int, error) {
	if years < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidYears, years)
	}
	return years * DaysPerYear, nil
}
