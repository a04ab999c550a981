// Package filter turns generic comparison descriptors (an operator code such
// as "gte" or "in", a criterion and a comparate) into SQL filter fragments
// with named placeholders, so query builders can assemble WHERE clauses from
// user input without accepting raw SQL.
//
// A Filter is validated and normalized once, in New, and is read-only
// afterwards:
//
//	f, err := filter.New("in", "Open,Closed", "status")
//	if err != nil {
//	    return err // *InvalidOperatorError or *InvalidCriterionError
//	}
//	f.SQLString() // lower(status) in (:v3f1c...)
//	f.Criterion() // []string{"open", "closed"}
//
// String criteria containing letters are lower-cased and the comparate is
// wrapped in lower() so both sides compare case-insensitively.
//
// Composing filters into a query and binding their values is left to the
// caller. SQLString uses `:name` placeholders keyed by BindVariable;
// Postgres renders `$n` placeholders for lib/pq and pgx instead.
package filter
