package blkpath

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// resolveSysfs maps id to a device node via the /sys/dev/block registry.
// The registry entry is a symlink whose target ends in the device name,
// e.g. ../../block/sda/sda1. An empty result with nil error means sysfs
// has no entry for id, which is normal on hosts without sysfs mounted.
func (r *Resolver) resolveSysfs(id DevID) (string, error) {
	link := filepath.Join(r.SysBlockDir, id.String())
	target, err := os.Readlink(link)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return r.findDevNode(filepath.Base(target)), nil
}

// findDevNode locates the node for a device name, checking the usual
// locations before falling back to a flat scan of the device directory.
// Returns "" when no node with that name exists.
func (r *Resolver) findDevNode(name string) string {
	candidates := []string{
		filepath.Join(r.DevDir, name),
		filepath.Join(r.DevDir, "mapper", name),
		filepath.Join(r.DevDir, "disk", "by-id", name),
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	entries, err := os.ReadDir(r.DevDir)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		if e.Name() == name {
			return filepath.Join(r.DevDir, e.Name())
		}
	}
	return ""
}
