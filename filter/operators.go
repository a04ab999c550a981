package filter

// OperatorCode is the caller-facing name of a comparison, e.g. "gte".
type OperatorCode string

const (
	GreaterThanOrEqual OperatorCode = "gte"
	LessThanOrEqual    OperatorCode = "lte"
	GreaterThan        OperatorCode = "gt"
	LessThan           OperatorCode = "lt"
	Equal              OperatorCode = "eql"
	NotEqual           OperatorCode = "noteql"
	In                 OperatorCode = "in"
	NotIn              OperatorCode = "notin"
	Like               OperatorCode = "like"
	Null               OperatorCode = "null"
)

// operatorMap holds the SQL operator for every code except Null, whose
// operator depends on the criterion. It must stay unexported so translation
// can't change at runtime.
var operatorMap = map[OperatorCode]string{
	GreaterThanOrEqual: ">=",
	LessThanOrEqual:    "<=",
	GreaterThan:        ">",
	LessThan:           "<",
	Equal:              "=",
	NotEqual:           "!=",
	In:                 "in",
	NotIn:              "not in",
	Like:               "like",
}

const (
	isNull    = "is null"
	isNotNull = "is not null"
)

// OperatorCodes lists every recognized code.
func OperatorCodes() []OperatorCode {
	return []OperatorCode{
		GreaterThanOrEqual, LessThanOrEqual, GreaterThan, LessThan,
		Equal, NotEqual, In, NotIn, Like, Null,
	}
}

// IsRange reports whether the code orders values (gte, lte, gt, lt).
func (c OperatorCode) IsRange() bool {
	switch c {
	case GreaterThanOrEqual, LessThanOrEqual, GreaterThan, LessThan:
		return true
	}
	return false
}

// IsMembership reports whether the code tests membership in a list.
func (c OperatorCode) IsMembership() bool {
	return c == In || c == NotIn
}

// IsNullCheck reports whether the code tests for NULL.
func (c OperatorCode) IsNullCheck() bool {
	return c == Null
}

// Valid reports whether the code is recognized.
func (c OperatorCode) Valid() bool {
	if c == Null {
		return true
	}
	_, ok := operatorMap[c]
	return ok
}

// translate resolves the SQL operator for code. nullable is the criterion's
// string form and only matters for Null.
func translate(code OperatorCode, nullable string) (string, error) {
	if code == Null {
		if nullable == "true" {
			return isNull, nil
		}
		return isNotNull, nil
	}
	op, ok := operatorMap[code]
	if !ok {
		return "", &InvalidOperatorError{Code: string(code)}
	}
	return op, nil
}
