package errors

// classified tags an error with a kind without repeating it in the message.
type classified struct {
	kind error
	err  error
}

func (e *classified) Error() string   { return e.err.Error() }
func (e *classified) Unwrap() []error { return []error{e.kind, e.err} }

// Classify returns err tagged with kind. errors.Is matches both kind and
// everything err wraps; the message is err's own.
func Classify(kind, err error) error {
	if err == nil {
		return nil
	}
	return &classified{kind: kind, err: err}
}
