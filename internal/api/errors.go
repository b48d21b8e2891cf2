package api

import "fmt"

// Kind categorizes a failed draw
type Kind int

const (
	// KindTransport means the service could not be reached or the
	// exchange broke off (network, DNS, cancelled context)
	KindTransport Kind = iota
	// KindService means a non-2xx status with a message from the service
	KindService
	// KindStatus means a non-2xx status without a usable message
	KindStatus
	// KindDecode means a 2xx status whose body was not a draw result
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindService:
		return "service"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is returned by Client.DrawCards for every failure
type Error struct {
	Kind       Kind
	StatusCode int    // zero for transport failures before a response
	Message    string // human-readable text suitable for an error banner
	Err        error  // underlying cause, if any
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}
