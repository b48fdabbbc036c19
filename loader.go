package render

// Loader maps a logical resource name to its contents. Names are
// forward-slash delimited paths relative to a root the implementation
// resolved at startup.
type Loader interface {
	// LoadText returns a text resource. Implementations must fail on
	// content containing a NUL byte, since consumers hand the text to
	// APIs that require NUL-terminated strings.
	LoadText(name string) (string, error)
}
