package errors

import "strings"

// Append clubs together all provided errors. Nil values are ignored.
//
// If given only a single non nil error, it is returned directly without
// wrapping so that error tests keep working on it.
func Append(errs ...error) error {
	var flat multiError
	for _, err := range errs {
		switch e := err.(type) {
		case nil:
			continue
		case multiError:
			flat = append(flat, e...)
		default:
			flat = append(flat, err)
		}
	}
	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	default:
		return flat
	}
}

// multiError is a collection of errors that acts as a single error.
type multiError []error

func (e multiError) Error() string {
	switch len(e) {
	case 0:
		return ""
	case 1:
		return e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unpack returns the collected errors.
func (e multiError) Unpack() []error {
	return e
}

// unpacker is implemented by errors that hold multiple children.
type unpacker interface {
	Unpack() []error
}
