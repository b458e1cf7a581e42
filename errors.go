package blkpath

import "fmt"

// NotFoundError is returned when the device identifier was extracted
// successfully but neither sysfs nor mountinfo could map it to a device
// node. It carries the identifier for diagnostics.
type NotFoundError struct {
	ID DevID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no device node found for dev %s", e.ID)
}

// ParseError is returned when a mountinfo line does not match the field
// structure documented in proc(5).
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed mountinfo line %q: %s", e.Line, e.Reason)
}
