package filter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// normalizeCriterion lower-cases string criteria containing a letter and
// turns membership criteria into a list. folded reports whether the
// criterion was lower-cased, which decides if the comparate gets folded too.
func normalizeCriterion(code OperatorCode, criterion any) (normalized any, folded bool) {
	if b, ok := criterion.([]byte); ok {
		criterion = string(b)
	}
	if s, ok := criterion.(string); ok && hasLetter(s) {
		criterion = strings.ToLower(s)
		folded = true
	}
	if code.IsMembership() && !isSequence(criterion) {
		criterion = splitList(stringForm(criterion))
	}
	return criterion, folded
}

func foldComparate(comparate string) string {
	return "lower(" + comparate + ")"
}

// parseAttempt is one step of an ordered parse chain.
type parseAttempt struct {
	name  string
	parse func(string) error
}

// rangeChain is tried in order for gte, lte, gt and lt; the first success wins.
var rangeChain = []parseAttempt{
	{name: "timestamp", parse: parseTimestamp},
	{name: "date", parse: parseDate},
	{name: "number", parse: parseNumber},
}

// firstParse returns the name of the first attempt that accepts s.
func firstParse(s string, chain []parseAttempt) (string, bool) {
	for _, attempt := range chain {
		if attempt.parse(s) == nil {
			return attempt.name, true
		}
	}
	return "", false
}

// timestampLayouts are tried on the upper-cased criterion, since lower-casing
// during normalization turns "T", "Z" and zone abbreviations like "UTC" into
// lower case, which neither time.Parse nor dateparse accept.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	time.RFC822,
	time.RFC822Z,
	time.UnixDate,
	time.RubyDate,
	time.ANSIC,
}

func parseTimestamp(s string) (err error) {
	if !strings.ContainsAny(s, "0123456789") {
		return fmt.Errorf("unparsable timestamp %q", s)
	}
	upper := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range timestampLayouts {
		if _, err := time.Parse(layout, upper); err == nil {
			return nil
		}
	}

	// dateparse can panic on malformed input.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unparsable timestamp %q: %v", s, r)
		}
	}()
	if _, err = dateparse.ParseAny(s); err == nil {
		return nil
	}
	_, err = dateparse.ParseAny(upper)
	return err
}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"20060102",
	"01/02/2006",
	"02 Jan 2006",
	"2 January 2006",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Monday, January 2, 2006",
}

func parseDate(s string) error {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return nil
		}
	}
	return fmt.Errorf("unparsable date %q", s)
}

// parseNumber accepts decimal floats and hexadecimal numbers, with or
// without a binary exponent ("0x10", "-0x1f", "0x1p-2").
func parseNumber(s string) error {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if !isHexInteger(s) {
			return err
		}
		if _, err := strconv.ParseInt(s, 0, 64); err != nil {
			return err
		}
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("not a finite number: %q", s)
	}
	return nil
}

func isHexInteger(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 2 && (strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"))
}

// validateCriterion checks criterion against the shape its operator family
// expects. For range codes it returns which parse attempt accepted it.
func validateCriterion(code OperatorCode, operator string, criterion any) (string, error) {
	invalid := &InvalidCriterionError{Criterion: criterion, Operator: operator}
	switch {
	case code.IsRange():
		kind, ok := firstParse(stringForm(criterion), rangeChain)
		if !ok {
			return "", invalid
		}
		return kind, nil
	case code.IsMembership():
		if !isSequence(criterion) {
			return "", invalid
		}
	case code.IsNullCheck():
		if s := stringForm(criterion); s != "true" && s != "false" {
			return "", invalid
		}
	}
	return "", nil
}
