package lens

// Location names the kind of slot a lens reads and writes.
type Location string

const (
	LocationHeader    Location = "header"
	LocationQuery     Location = "query"
	LocationPath      Location = "path"
	LocationBody      Location = "body"
	LocationFormField Location = "form field"
)

// ParamType is a documentation hint describing the domain value of a lens.
type ParamType string

const (
	ParamString   ParamType = "string"
	ParamInteger  ParamType = "integer"
	ParamNumber   ParamType = "number"
	ParamBoolean  ParamType = "boolean"
	ParamUUID     ParamType = "uuid"
	ParamDuration ParamType = "duration"
	ParamDateTime ParamType = "date-time"
	ParamBinary   ParamType = "binary"
	ParamObject   ParamType = "object"
)

// Meta describes a lens for error reporting and contract documentation.
type Meta struct {
	Name        string
	Location    Location
	Required    bool
	Multi       bool
	Description string
	ParamType   ParamType
	// MediaType is the content type of body lenses.
	MediaType string
	// Fields lists the form field lenses checked by a web form body lens.
	Fields []Meta
}

// Option configures lens metadata.
type Option func(*Meta)

// WithDescription documents the lens.
func WithDescription(description string) Option {
	return func(m *Meta) { m.Description = description }
}

func withFields(fields []Meta) Option {
	return func(m *Meta) { m.Fields = fields }
}

func withMediaType(mediaType string) Option {
	return func(m *Meta) { m.MediaType = mediaType }
}
