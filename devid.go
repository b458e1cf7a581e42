package blkpath

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// DevID identifies a device within the running kernel as a major/minor
// pair. The zero value is 0:0, which the kernel reserves for anonymous
// filesystems.
type DevID struct {
	Major uint32
	Minor uint32
}

// NewDevID splits a raw dev_t value into its major and minor parts.
func NewDevID(dev uint64) DevID {
	return DevID{Major: unix.Major(dev), Minor: unix.Minor(dev)}
}

// Dev returns the raw dev_t value for the identifier.
func (id DevID) Dev() uint64 {
	return unix.Mkdev(id.Major, id.Minor)
}

func (id DevID) String() string {
	return fmt.Sprintf("%d:%d", id.Major, id.Minor)
}

// DevIDFromPath returns the identifier of the device backing path.
// Symlinks are followed, matching regular stat semantics.
func DevIDFromPath(path string) (DevID, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return DevID{}, &os.PathError{Op: "stat", Path: path, Err: err}
	}
	return NewDevID(uint64(st.Dev)), nil
}

// DevIDFromFile returns the identifier of the device backing the already
// open file. Metadata is read from the descriptor itself, so no second
// name lookup happens and the result cannot race with a concurrent rename.
func DevIDFromFile(f *os.File) (DevID, error) {
	var st unix.Stat_t
	if err := unix.Fstat(int(f.Fd()), &st); err != nil {
		return DevID{}, &os.PathError{Op: "fstat", Path: f.Name(), Err: err}
	}
	return NewDevID(uint64(st.Dev)), nil
}
