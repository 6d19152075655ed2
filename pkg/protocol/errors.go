package protocol

import "fmt"

// APIError is the service's own application-level failure channel: the
// request reached Codeforces and was rejected there (bad key, rate limit,
// unknown entity, ...). Comment is the reason string from the envelope.
type APIError struct {
	Comment string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("codeforces api: %s", e.Comment)
}

// DecodeError reports a response that did not match the shape the issuing
// command declared. Field is the path of the offending field, e.g.
// "result[2].handle"; Err is nil when the field was simply missing.
type DecodeError struct {
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("decode %s: missing required field", e.Field)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
