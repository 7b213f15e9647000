// Package validate implements the input pipeline: unconditional sanitisation
// of every string field followed by validation of a declared schema. A
// failing payload reports every violated constraint, not just the first.
package validate

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"finecto/internal/apperr"
)

// incompleteFields is the message carried by every validation failure.
const incompleteFields = "Incomplete Fields"

// MappedError describes one failed field constraint. Nested failures use
// dotted item paths (e.g. "lines.description"); batch validation suffixes
// the path with the index of the failing record.
type MappedError struct {
	Item          string `json:"item"`
	PreviousValue string `json:"previousValue"`
	Message       string `json:"message"`
}

// Rule checks one declared constraint and returns the violation, if any.
type Rule func() *MappedError

// Schema is the declared constraint set for one payload.
type Schema []Rule

// Payload is an input shape that can sanitise its string fields and declare
// its validation schema.
type Payload interface {
	Sanitize()
	Schema() Schema
}

// RequiredString declares that a field must be a non-blank string.
func RequiredString(name, value string) Rule {
	return func() *MappedError {
		if strings.TrimSpace(value) == "" {
			return &MappedError{
				Item:          name,
				PreviousValue: value,
				Message:       name + " should not be empty",
			}
		}
		return nil
	}
}

// PositiveNumber declares that a field must be strictly positive.
func PositiveNumber(name string, value float64) Rule {
	return func() *MappedError {
		if value <= 0 {
			return &MappedError{
				Item:          name,
				PreviousValue: strconv.FormatFloat(value, 'f', -1, 64),
				Message:       name + " must be a positive number",
			}
		}
		return nil
	}
}

// Check sanitises the payload and evaluates every declared rule. On failure
// it returns a bad-request error carrying the full violation list.
func Check(p Payload) error {
	p.Sanitize()
	if errs := run(p.Schema()); len(errs) > 0 {
		return apperr.BadRequest(incompleteFields, errs)
	}
	return nil
}

// Batch validates each payload independently and in parallel. Violations are
// reported in input order with each item path suffixed by the index of the
// failing record; a single error carries the concatenation of all of them.
func Batch(payloads []Payload) error {
	results := make([][]MappedError, len(payloads))

	var wg sync.WaitGroup
	for i, p := range payloads {
		wg.Add(1)
		go func(i int, p Payload) {
			defer wg.Done()
			p.Sanitize()
			results[i] = run(p.Schema())
		}(i, p)
	}
	wg.Wait()

	var all []MappedError
	for i, errs := range results {
		for _, e := range errs {
			e.Item = fmt.Sprintf("%s at index [%d]", e.Item, i)
			all = append(all, e)
		}
	}
	if len(all) > 0 {
		return apperr.BadRequest(incompleteFields, all)
	}
	return nil
}

func run(s Schema) []MappedError {
	var out []MappedError
	for _, rule := range s {
		if v := rule(); v != nil {
			out = append(out, *v)
		}
	}
	return out
}
