// Package validation holds the field-level validation rules shared by the
// signup, login, password-reset, address, payment and checkout flows, plus a
// small accumulator for collecting per-field error messages.
package validation

// FieldErrors maps a field name to its validation message. An empty map means
// the input is valid. It satisfies error so services can return it directly
// and handlers can pick it apart with errors.As.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	for _, msg := range e {
		return msg
	}
	return "validation failed"
}

// Validator accumulates field errors. The first failure recorded for a field
// wins; later checks on the same field are ignored.
type Validator struct {
	Errors FieldErrors
}

func New() *Validator {
	return &Validator{Errors: make(FieldErrors)}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; !exists {
		v.Errors[field] = message
	}
}

// Check adds message for field when ok is false.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Field runs a single-value rule and records its result.
func (v *Validator) Field(field, value string, rule func(string) string) {
	if msg := rule(value); msg != "" {
		v.AddError(field, msg)
	}
}
