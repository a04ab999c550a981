package filter

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// stringForm is the textual value used for validation and null checks.
func stringForm(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case *time.Time:
		if v == nil {
			return ""
		}
		return v.Format(time.RFC3339Nano)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}

func display(v any) string {
	if isSequence(v) {
		return fmt.Sprint(v)
	}
	return stringForm(v)
}

func isSequence(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// cloneSequence returns a copy of a slice so callers can't reach a filter's
// criterion through a shared backing array.
func cloneSequence(v any) any {
	switch v := v.(type) {
	case []string:
		if v == nil {
			return v
		}
		return append([]string(nil), v...)
	case []any:
		if v == nil {
			return v
		}
		return append([]any(nil), v...)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.IsNil() {
		return v
	}
	c := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	reflect.Copy(c, rv)
	return c.Interface()
}

func hasLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
			return true
		}
	}
	return false
}

// splitList splits on "," and drops trailing empty fields, so "" and "a,"
// give [] and ["a"].
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
