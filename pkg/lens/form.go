package lens

import "slices"

// WebForm is a decoded form body: field values keyed by name plus the
// failures collected while checking the declared form fields.
// WebForm values are immutable.
type WebForm struct {
	fields map[string][]string
	errors []Failure
}

// NewWebForm copies fields into a form without errors.
func NewWebForm(fields map[string][]string) WebForm {
	return WebForm{fields: cloneFields(fields)}
}

// EmptyForm returns a form with no fields and no errors.
func EmptyForm() WebForm {
	return WebForm{fields: map[string][]string{}}
}

// FormField is the Spec for string fields of a WebForm.
var FormField = NewSpec[WebForm, string, string](formFieldLocator{}, Identity[string]())

// Fields returns a copy of all fields.
func (f WebForm) Fields() map[string][]string {
	return cloneFields(f.fields)
}

// Values returns a copy of the values of the named field.
func (f WebForm) Values(name string) []string {
	return slices.Clone(f.fields[name])
}

// Value returns the first value of the named field, or "".
func (f WebForm) Value(name string) string {
	if v := f.fields[name]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// Errors returns the failures collected during validation.
func (f WebForm) Errors() []Failure {
	return slices.Clone(f.errors)
}

// Valid reports whether validation collected no failures.
func (f WebForm) Valid() bool {
	return len(f.errors) == 0
}

// Plus returns a copy of f with value appended to the named field.
func (f WebForm) Plus(name, value string) WebForm {
	fields := cloneFields(f.fields)
	fields[name] = append(fields[name], value)
	f.fields = fields
	return f
}

// With applies the bindings from left to right.
func (f WebForm) With(bindings ...Binding[WebForm]) WebForm {
	return With(f, bindings...)
}

func (f WebForm) withField(name string, values []string) WebForm {
	fields := cloneFields(f.fields)
	if len(values) == 0 {
		delete(fields, name)
	} else {
		fields[name] = slices.Clone(values)
	}
	f.fields = fields
	return f
}

func (f WebForm) withErrors(errs []Failure) WebForm {
	f.errors = slices.Clone(errs)
	return f
}

func cloneFields(fields map[string][]string) map[string][]string {
	out := make(map[string][]string, len(fields))
	for k, v := range fields {
		out[k] = slices.Clone(v)
	}
	return out
}

type formFieldLocator struct{}

func (formFieldLocator) Location() Location { return LocationFormField }

func (formFieldLocator) Get(f WebForm, name string) ([]string, error) {
	return f.Values(name), nil
}

func (formFieldLocator) Set(f WebForm, name string, values []string) WebForm {
	return f.withField(name, values)
}

// FormValidator decides the outcome of a checked form.
type FormValidator interface {
	Validate(form WebForm) (WebForm, error)
}

// FormValidatorFunc adapts a function to FormValidator.
type FormValidatorFunc func(form WebForm) (WebForm, error)

func (fn FormValidatorFunc) Validate(form WebForm) (WebForm, error) {
	return fn(form)
}

var (
	// Strict fails with a *ContractBreach listing the form errors, if any.
	Strict FormValidator = FormValidatorFunc(func(form WebForm) (WebForm, error) {
		if form.Valid() {
			return form, nil
		}
		return WebForm{}, &ContractBreach{Failures: form.Errors()}
	})

	// Feedback passes the form through with its errors for the caller to inspect.
	Feedback FormValidator = FormValidatorFunc(func(form WebForm) (WebForm, error) {
		return form, nil
	})
)
