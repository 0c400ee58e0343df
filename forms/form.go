// Package forms implements the multi-field form state machine shared by the
// signup, login, password-reset, address and payment flows. Each field moves
// pristine -> touched -> {valid, invalid}; errors are only recorded for
// touched fields until a submit forces every field touched.
package forms

import "github.com/heliomart/solarstore-go/validation"

// Rule derives an error message for one field from the full value set, so
// cross-field rules (confirm password) can see their counterpart. Empty
// string means valid.
type Rule func(values map[string]string) string

type Form struct {
	values  map[string]string
	touched map[string]bool
	errors  validation.FieldErrors
	rules   map[string]Rule
	// dependents lists fields to revalidate when a field changes, e.g.
	// confirm_password depends on password.
	dependents map[string][]string
	general    string
}

func New() *Form {
	return &Form{
		values:     make(map[string]string),
		touched:    make(map[string]bool),
		errors:     make(validation.FieldErrors),
		rules:      make(map[string]Rule),
		dependents: make(map[string][]string),
	}
}

// Rule registers the validator for a field. One rule per field.
func (f *Form) Rule(field string, rule Rule) *Form {
	f.rules[field] = rule
	return f
}

// Value registers a simple single-value rule for a field.
func (f *Form) Value(field string, rule func(string) string) *Form {
	return f.Rule(field, func(values map[string]string) string {
		return rule(values[field])
	})
}

// DependsOn makes dependent revalidate whenever field changes.
func (f *Form) DependsOn(field string, dependent string) *Form {
	f.dependents[field] = append(f.dependents[field], dependent)
	return f
}

// SetValues seeds the form without touching any field, the way a component
// mounts with initial values.
func (f *Form) SetValues(values map[string]string) *Form {
	for k, v := range values {
		f.values[k] = v
	}
	return f
}

// Change updates a field value. A touched field revalidates immediately, as
// do its registered dependents. Resuming typing clears the general error.
func (f *Form) Change(field, value string) {
	f.values[field] = value
	f.general = ""
	if f.touched[field] {
		f.runRule(field)
	}
	for _, dep := range f.dependents[field] {
		if f.touched[dep] {
			f.runRule(dep)
		}
	}
}

// Blur marks the field touched and validates it.
func (f *Form) Blur(field string) {
	f.touched[field] = true
	f.runRule(field)
}

// Submit forces every field touched, re-runs every rule regardless of prior
// per-field state, and returns the aggregate error set. Submission may only
// proceed when the returned set is empty.
func (f *Form) Submit() validation.FieldErrors {
	for field := range f.rules {
		f.touched[field] = true
		f.runRule(field)
	}
	out := make(validation.FieldErrors, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

func (f *Form) Valid() bool {
	return len(f.errors) == 0
}

// FieldError returns the stored message for a field, which is empty while the
// field is pristine.
func (f *Form) FieldError(field string) string {
	return f.errors[field]
}

func (f *Form) Touched(field string) bool {
	return f.touched[field]
}

func (f *Form) Get(field string) string {
	return f.values[field]
}

// SetGeneralError records an operation-level error, kept separate from field
// errors. It is cleared by the next Change.
func (f *Form) SetGeneralError(msg string) {
	f.general = msg
}

func (f *Form) GeneralError() string {
	return f.general
}

func (f *Form) runRule(field string) {
	rule, ok := f.rules[field]
	if !ok {
		return
	}
	if msg := rule(f.values); msg != "" {
		f.errors[field] = msg
	} else {
		delete(f.errors, field)
	}
}
