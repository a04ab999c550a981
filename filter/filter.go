package filter

import (
	"context"
	"log/slog"
)

// Filter is a single validated comparison such as `created_at >= :name`.
// It is immutable once New returns; use Rebuild to derive a changed copy.
type Filter struct {
	operatorCode OperatorCode
	operator     string
	criterion    any
	comparate    string
	aggregate    bool
	bindVariable string
	cteFilter    bool

	cfg config
}

// New translates code into an SQL operator, normalizes criterion and
// comparate for case-insensitive comparison, validates criterion against
// what the operator expects and assigns a fresh bind variable.
//
// It returns an *InvalidOperatorError for an unknown code and an
// *InvalidCriterionError when criterion doesn't fit the operator.
func New(code string, criterion any, comparate string, options ...Option) (*Filter, error) {
	cfg := defaultConfig()
	cfg.inputs = inputs{code: code, criterion: criterion, comparate: comparate}
	cfg.apply(options)
	return build(cfg)
}

// Rebuild runs construction again from the filter's original inputs with
// options applied on top of the ones it was built with. The receiver is
// left untouched and a new bind variable is drawn.
//
// Example:
//
//	g, err := f.Rebuild(filter.WithCriterion("2024-06-01"))
func (f *Filter) Rebuild(options ...Option) (*Filter, error) {
	cfg := f.cfg
	cfg.apply(options)
	return build(cfg)
}

func build(cfg config) (*Filter, error) {
	code := OperatorCode(cfg.code)
	criterion := cfg.criterion
	if isSequence(criterion) {
		criterion = cloneSequence(criterion)
		cfg.criterion = cloneSequence(criterion)
	}

	operator, err := translate(code, stringForm(criterion))
	if err != nil {
		cfg.reject(err)
		return nil, err
	}

	criterion, folded := normalizeCriterion(code, criterion)
	comparate := cfg.comparate
	if folded {
		comparate = foldComparate(comparate)
	}

	parsedAs, err := validateCriterion(code, operator, criterion)
	if err != nil {
		cfg.reject(err)
		return nil, err
	}

	f := &Filter{
		operatorCode: code,
		operator:     operator,
		criterion:    criterion,
		comparate:    comparate,
		aggregate:    cfg.aggregate,
		bindVariable: cfg.generator.BindVariable(),
		cteFilter:    cfg.cteFilter,
		cfg:          cfg,
	}
	if cfg.logger != nil {
		attrs := []slog.Attr{
			slog.String("code", string(code)),
			slog.String("operator", operator),
			slog.String("comparate", comparate),
			slog.String("bind_variable", f.bindVariable),
		}
		if parsedAs != "" {
			attrs = append(attrs, slog.String("parsed_as", parsedAs))
		}
		cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "filter built", attrs...)
	}
	return f, nil
}

func (c config) reject(err error) {
	if c.logger == nil {
		return
	}
	c.logger.LogAttrs(context.Background(), slog.LevelDebug, "filter rejected",
		slog.String("code", c.code),
		slog.String("comparate", c.comparate),
		slog.Any("error", err),
	)
}

// SQLString renders the filter with a named placeholder:
//
//	lower(status) in (:name)   in, notin
//	deleted_at is null         null
//	created_at >= :name        everything else
func (f *Filter) SQLString() string {
	switch {
	case f.operatorCode.IsMembership():
		return f.comparate + " " + f.operator + " (:" + f.bindVariable + ")"
	case f.operatorCode.IsNullCheck():
		return f.comparate + " " + f.operator
	default:
		return f.comparate + " " + f.operator + " :" + f.bindVariable
	}
}

func (f *Filter) String() string {
	return f.SQLString()
}

func (f *Filter) OperatorCode() OperatorCode {
	return f.operatorCode
}

// Operator is the SQL operator, e.g. ">=" or "is not null".
func (f *Filter) Operator() string {
	return f.operator
}

// Criterion is the normalized criterion. Membership filters hold a slice,
// which is returned as a copy.
func (f *Filter) Criterion() any {
	if isSequence(f.criterion) {
		return cloneSequence(f.criterion)
	}
	return f.criterion
}

// Comparate is the compared expression, wrapped in lower() when the
// criterion was lower-cased.
func (f *Filter) Comparate() string {
	return f.comparate
}

func (f *Filter) Aggregate() bool {
	return f.aggregate
}

func (f *Filter) BindVariable() string {
	return f.bindVariable
}

// CTEFilter reports whether the filter should be applied after a common
// table expression is materialized rather than inline.
func (f *Filter) CTEFilter() bool {
	return f.cteFilter
}
