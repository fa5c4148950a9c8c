package nova

import (
	"fmt"
)

// FetchError reports a failure to retrieve the playlist page: either the
// request could not be carried out, or the server answered with a non-2xx
// status. StatusCode is zero for transport failures.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: HTTP error code %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DecodeError reports a response body that is not valid UTF-8 text.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ZoneError reports an unrecognized time zone identifier. Err is nil for
// names rejected without a lookup.
type ZoneError struct {
	Name string
	Err  error
}

func (e *ZoneError) Error() string {
	return fmt.Sprintf("%q is not a valid time zone", e.Name)
}

func (e *ZoneError) Unwrap() error { return e.Err }

// TimeFormatError reports a station time that is not a valid "HH:MM" value.
// Err is the underlying parse error, if any.
type TimeFormatError struct {
	Value  string
	Reason string
	Err    error
}

func (e *TimeFormatError) Error() string {
	return fmt.Sprintf("invalid time %q: %s", e.Value, e.Reason)
}

func (e *TimeFormatError) Unwrap() error { return e.Err }
