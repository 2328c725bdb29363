package serializers

// Validator is the external schema-validation collaborator: it checks a value
// against a generated schema and reports a non-nil error when the value does
// not conform. The core never validates itself; adapters under validator/
// provide implementations.
type Validator interface {
	Validate(schema map[string]any, value any, opts Options) error
}

var defaultValidator Validator

// SetValidator installs the process-wide validation collaborator. Adapter
// packages call this from init so a blank import is enough to wire them.
func SetValidator(v Validator) { defaultValidator = v }

// DefaultValidator returns the installed validation collaborator, or nil when
// none has been registered.
func DefaultValidator() Validator { return defaultValidator }

// ErrNoValidator is returned by validation entry points when no collaborator
// has been registered.
var ErrNoValidator = DeclErrf("no validator registered; import a validator adapter (e.g. validator/jsonschema)")
