package filter

import (
	"encoding/json"
	"fmt"
)

// Descriptor is the JSON form of a filter definition:
//
//	{"operator": "in", "criterion": "open,closed", "comparate": "status"}
//
// A missing cte_filter means true.
type Descriptor struct {
	Operator  string `json:"operator"`
	Criterion any    `json:"criterion"`
	Comparate string `json:"comparate"`
	Aggregate bool   `json:"aggregate,omitempty"`
	CTEFilter *bool  `json:"cte_filter,omitempty"`
}

// Build constructs the filter described by d. Options are applied after
// the descriptor's own flags.
func (d Descriptor) Build(options ...Option) (*Filter, error) {
	opts := []Option{WithAggregate(d.Aggregate)}
	if d.CTEFilter != nil {
		opts = append(opts, WithCTEFilter(*d.CTEFilter))
	}
	return New(d.Operator, d.Criterion, d.Comparate, append(opts, options...)...)
}

// Decode builds a filter from a JSON descriptor.
func Decode(data []byte, options ...Option) (*Filter, error) {
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal filter descriptor: %w", err)
	}
	return d.Build(options...)
}

// Descriptor returns the definition f was built from, before normalization.
func (f *Filter) Descriptor() Descriptor {
	cteFilter := f.cteFilter
	criterion := f.cfg.criterion
	if isSequence(criterion) {
		criterion = cloneSequence(criterion)
	}
	return Descriptor{
		Operator:  f.cfg.code,
		Criterion: criterion,
		Comparate: f.cfg.comparate,
		Aggregate: f.aggregate,
		CTEFilter: &cteFilter,
	}
}
