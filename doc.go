// Package blkpath resolves the block device backing a file, directory or
// open file on Linux.
//
// Resolution happens in two steps: the kernel device identifier
// (major:minor) is read from file metadata, then translated into a device
// node path. The translation first follows the /sys/dev/block symlink for
// the identifier; when sysfs is not available, e.g. in containers, it falls
// back to scanning /proc/self/mountinfo for a mount backed by the same
// identifier.
//
//	dev, err := blkpath.Resolve("/var/lib/postgresql")
//	// dev == "/dev/nvme0n1p2"
//
// Resolution is read-only and never mutates mount state. All lookups are
// best-effort snapshots: a concurrent unmount can invalidate the returned
// path at any time.
package blkpath
