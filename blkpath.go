package blkpath

import "os"

// Resolver maps device identifiers to device node paths. The fields point
// at the kernel interfaces consumed during resolution and exist so tests
// can substitute fixture trees; production callers use New.
//
// A Resolver holds no state between calls and is safe for concurrent use.
type Resolver struct {
	SysBlockDir   string // sysfs block device registry, normally /sys/dev/block
	MountInfoPath string // per-process mount table, normally /proc/self/mountinfo
	DevDir        string // device node directory, normally /dev
}

// New returns a Resolver wired to the running kernel's interfaces.
func New() *Resolver {
	return &Resolver{
		SysBlockDir:   "/sys/dev/block",
		MountInfoPath: "/proc/self/mountinfo",
		DevDir:        "/dev",
	}
}

// Resolve returns the device node path backing path. Symlinks in path are
// followed.
func (r *Resolver) Resolve(path string) (string, error) {
	id, err := DevIDFromPath(path)
	if err != nil {
		return "", err
	}
	return r.ResolveDevID(id)
}

// ResolveFile returns the device node path backing the open file f.
func (r *Resolver) ResolveFile(f *os.File) (string, error) {
	id, err := DevIDFromFile(f)
	if err != nil {
		return "", err
	}
	return r.ResolveDevID(id)
}

// ResolveDevID translates a device identifier into a device node path.
// Sysfs is consulted first; when it has no entry for the identifier the
// mount table is scanned instead. A genuine I/O or parse failure from
// either source aborts resolution immediately and is never downgraded to
// NotFoundError.
func (r *Resolver) ResolveDevID(id DevID) (string, error) {
	dev, err := r.resolveSysfs(id)
	if err != nil {
		return "", err
	}
	if dev != "" {
		return dev, nil
	}
	dev, err = r.resolveMountInfo(id)
	if err != nil {
		return "", err
	}
	if dev != "" {
		return dev, nil
	}
	return "", &NotFoundError{ID: id}
}

var defaultResolver = New()

// Resolve resolves path against the running kernel's interfaces.
func Resolve(path string) (string, error) {
	return defaultResolver.Resolve(path)
}

// ResolveFile resolves the open file f against the running kernel's
// interfaces.
func ResolveFile(f *os.File) (string, error) {
	return defaultResolver.ResolveFile(f)
}
