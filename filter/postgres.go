package filter

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strconv"
)

type postgresConfig struct {
	arrayDriver func(a any) interface {
		driver.Valuer
		sql.Scanner
	}
}

type PostgresOption struct {
	f func(*postgresConfig)
}

// WithArrayDriver is an option to specify a custom driver to convert the
// criterion of in and notin filters to a Postgres driver compatible type.
// An example for github.com/lib/pq is:
//
//	where, values, err := f.Postgres(1, filter.WithArrayDriver(pq.Array))
//
// For github.com/jackc/pgx this option is not needed.
func WithArrayDriver(f func(a any) interface {
	driver.Valuer
	sql.Scanner
}) PostgresOption {
	return PostgresOption{
		f: func(c *postgresConfig) {
			c.arrayDriver = f
		},
	}
}

// Postgres renders the filter with a positional placeholder ($paramIndex)
// and returns the values to bind, for drivers that don't support named
// parameters. Membership filters bind the whole list as one array:
//
//	lower(status) = ANY($1)
//	NOT (lower(status) = ANY($1))
//
// Null checks render without a placeholder and return no values. eql,
// noteql and like don't validate their criterion's shape; a list given to
// them is bound through the array driver as well.
func (f *Filter) Postgres(paramIndex int, options ...PostgresOption) (string, []any, error) {
	if paramIndex <= 0 {
		return "", nil, fmt.Errorf("paramIndex must be greater than 0")
	}
	var cfg postgresConfig
	for _, option := range options {
		if option.f != nil {
			option.f(&cfg)
		}
	}

	placeholder := "$" + strconv.Itoa(paramIndex)
	switch f.operatorCode {
	case In, NotIn:
		var value any = f.Criterion()
		if cfg.arrayDriver != nil {
			value = cfg.arrayDriver(value)
		}
		condition := fmt.Sprintf("%s = ANY(%s)", f.comparate, placeholder)
		if f.operatorCode == NotIn {
			condition = "NOT (" + condition + ")"
		}
		return condition, []any{value}, nil
	case Null:
		return f.comparate + " " + f.operator, nil, nil
	default:
		value := f.Criterion()
		if cfg.arrayDriver != nil && isSequence(value) {
			value = cfg.arrayDriver(value)
		}
		return fmt.Sprintf("%s %s %s", f.comparate, f.operator, placeholder), []any{value}, nil
	}
}

// NamedArgs maps the bind variable to the criterion, ready for engines that
// bind the `:name` placeholders of SQLString. Null checks have no arguments.
func (f *Filter) NamedArgs() map[string]any {
	if f.operatorCode.IsNullCheck() {
		return map[string]any{}
	}
	return map[string]any{f.bindVariable: f.Criterion()}
}
