package validate

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finecto/internal/apperr"
)

// stubPayload declares one required string and one positive number.
type stubPayload struct {
	name      string
	amount    float64
	sanitized bool
}

func (p *stubPayload) Sanitize() {
	p.sanitized = true
	p.name = Clean(p.name)
}

func (p *stubPayload) Schema() Schema {
	return Schema{
		RequiredString("name", p.name),
		PositiveNumber("amount", p.amount),
	}
}

func asAppError(t *testing.T, err error) *apperr.Error {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*apperr.Error)
	require.True(t, ok, "expected *apperr.Error, got %T", err)
	return appErr
}

func TestCheck_Valid(t *testing.T) {
	p := &stubPayload{name: "vendor", amount: 10}
	require.NoError(t, Check(p))
	assert.True(t, p.sanitized, "Check must sanitize before validating")
}

func TestCheck_CollectsAllViolations(t *testing.T) {
	p := &stubPayload{name: "  ", amount: -3}

	appErr := asAppError(t, Check(p))
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Incomplete Fields", appErr.Message)

	errs, ok := appErr.Errors.([]MappedError)
	require.True(t, ok)
	require.Len(t, errs, 2, "both violations must be reported")
	assert.Equal(t, "name", errs[0].Item)
	assert.Equal(t, "name should not be empty", errs[0].Message)
	assert.Equal(t, "amount", errs[1].Item)
	assert.Equal(t, "-3", errs[1].PreviousValue)
	assert.Equal(t, "amount must be a positive number", errs[1].Message)
}

func TestCheck_SanitizesBeforeValidation(t *testing.T) {
	p := &stubPayload{name: "O'Brien", amount: 1}
	require.NoError(t, Check(p))
	assert.Equal(t, `O\'Brien`, p.name)
}

func TestBatch_AllValid(t *testing.T) {
	payloads := []Payload{
		&stubPayload{name: "a", amount: 1},
		&stubPayload{name: "b", amount: 2},
	}
	require.NoError(t, Batch(payloads))
}

func TestBatch_AnnotatesFailingIndex(t *testing.T) {
	payloads := []Payload{
		&stubPayload{name: "valid", amount: 1},
		&stubPayload{name: "", amount: 0},
	}

	appErr := asAppError(t, Batch(payloads))
	assert.Equal(t, "Incomplete Fields", appErr.Message)

	errs, ok := appErr.Errors.([]MappedError)
	require.True(t, ok)
	require.Len(t, errs, 2, "only the invalid record's violations are reported")
	assert.Equal(t, "name at index [1]", errs[0].Item)
	assert.Equal(t, "amount at index [1]", errs[1].Item)
}

func TestBatch_ErrorsKeepInputOrder(t *testing.T) {
	payloads := []Payload{
		&stubPayload{name: "", amount: 1},
		&stubPayload{name: "ok", amount: 2},
		&stubPayload{name: "", amount: 3},
	}

	appErr := asAppError(t, Batch(payloads))
	errs, ok := appErr.Errors.([]MappedError)
	require.True(t, ok)
	require.Len(t, errs, 2)
	assert.Equal(t, "name at index [0]", errs[0].Item)
	assert.Equal(t, "name at index [2]", errs[1].Item)
}
