package filter

import "log/slog"

// inputs are the raw construction arguments of a filter.
type inputs struct {
	code      string
	criterion any
	comparate string
}

type config struct {
	inputs

	aggregate bool
	cteFilter bool
	generator BindVariableGenerator
	logger    *slog.Logger
}

func defaultConfig() config {
	return config{
		cteFilter: true,
		generator: defaultGenerator,
	}
}

type Option struct {
	f func(*config)
}

func (c *config) apply(options []Option) {
	for _, option := range options {
		if option.f != nil {
			option.f(c)
		}
	}
}

// WithAggregate marks the filter as applying to an aggregated expression.
// The flag is carried for the query composer and not interpreted here.
func WithAggregate(aggregate bool) Option {
	return Option{
		f: func(c *config) {
			c.aggregate = aggregate
		},
	}
}

// WithCTEFilter sets whether the filter is applied after materializing a
// common table expression instead of inline. The default is true.
func WithCTEFilter(cteFilter bool) Option {
	return Option{
		f: func(c *config) {
			c.cteFilter = cteFilter
		},
	}
}

// WithBindVariableGenerator sets the source of placeholder names. The
// default is RandomHex. A nil generator keeps the current one.
//
// Example:
//
//	seq := filter.NewSequence("p")
//	f, err := filter.New("eql", "42", "id", filter.WithBindVariableGenerator(seq))
//	// f.SQLString() == "id = :p1"
func WithBindVariableGenerator(generator BindVariableGenerator) Option {
	return Option{
		f: func(c *config) {
			if generator != nil {
				c.generator = generator
			}
		},
	}
}

// WithLogger attaches a logger that receives a debug record for every
// built or rejected filter. Filters don't log by default.
func WithLogger(logger *slog.Logger) Option {
	return Option{
		f: func(c *config) {
			c.logger = logger
		},
	}
}

// WithOperatorCode replaces the operator code, see Filter.Rebuild.
func WithOperatorCode(code string) Option {
	return Option{
		f: func(c *config) {
			c.code = code
		},
	}
}

// WithCriterion replaces the criterion, see Filter.Rebuild.
func WithCriterion(criterion any) Option {
	return Option{
		f: func(c *config) {
			c.criterion = criterion
		},
	}
}

// WithComparate replaces the comparate, see Filter.Rebuild.
func WithComparate(comparate string) Option {
	return Option{
		f: func(c *config) {
			c.comparate = comparate
		},
	}
}
