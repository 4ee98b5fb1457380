package parse

type parseOpts struct {
	comments bool
}

type ParseOption func(*parseOpts)

// ParseComments controls whether '#' starts a line comment at token
// boundaries. It defaults to true; with false, '#' is ordinary token text
// everywhere.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}
