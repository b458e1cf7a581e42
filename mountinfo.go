package blkpath

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// mountEntry is one parsed record from the per-process mount table.
type mountEntry struct {
	id         DevID
	mountPoint string
	source     string
	options    string
}

// resolveMountInfo maps id to a mount source by scanning the mount table.
// When several mounts share the identifier (bind mounts, overmounts) the
// last one in file order wins, since the kernel lists mounts in mount
// order and a later mount shadows an earlier one. An empty result with
// nil error means no mount is backed by id.
func (r *Resolver) resolveMountInfo(id DevID) (string, error) {
	f, err := os.Open(r.MountInfoPath)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer f.Close()
	return r.scanMountInfo(f, id)
}

func (r *Resolver) scanMountInfo(rd io.Reader, id DevID) (string, error) {
	var last string
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		entry, err := parseMountInfoLine(scanner.Text())
		if err != nil {
			return "", err
		}
		if entry.id != id {
			continue
		}
		if dev := r.sourceDevNode(entry.source); dev != "" {
			last = dev
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return last, nil
}

// parseMountInfoLine splits one mountinfo record. The format per proc(5):
//
//	36 35 98:0 /mnt1 /mnt2 rw,noatime master:1 - ext3 /dev/root rw,errors=continue
//	(1)(2)(3)  (4)   (5)   (6)        (7)      (8)(9) (10)      (11)
//
// with a variable number of optional fields (7) terminated by a single
// dash. The mount source is the second field after the dash.
func parseMountInfoLine(line string) (mountEntry, error) {
	fields := strings.Fields(line)
	if len(fields) < 10 {
		return mountEntry{}, &ParseError{Line: line, Reason: "fewer than 10 fields"}
	}
	id, err := parseDevField(fields[2])
	if err != nil {
		return mountEntry{}, &ParseError{Line: line, Reason: err.Error()}
	}
	sep := -1
	for i := 6; i < len(fields); i++ {
		if fields[i] == "-" {
			sep = i
			break
		}
	}
	if sep < 0 || sep+2 >= len(fields) {
		return mountEntry{}, &ParseError{Line: line, Reason: "missing optional field separator"}
	}
	return mountEntry{
		id:         id,
		mountPoint: unescapeOctal(fields[4]),
		source:     unescapeOctal(fields[sep+2]),
		options:    fields[5],
	}, nil
}

func parseDevField(field string) (DevID, error) {
	majs, mins, ok := strings.Cut(field, ":")
	if !ok {
		return DevID{}, errors.New("device field is not major:minor")
	}
	maj, err := strconv.ParseUint(majs, 10, 32)
	if err != nil {
		return DevID{}, errors.New("unparseable device major number")
	}
	min, err := strconv.ParseUint(mins, 10, 32)
	if err != nil {
		return DevID{}, errors.New("unparseable device minor number")
	}
	return DevID{Major: uint32(maj), Minor: uint32(min)}, nil
}

// unescapeOctal decodes the \NNN octal escapes the kernel applies to
// whitespace and backslashes in mount sources and mount points, e.g.
// "/dev/disk/by-label/my\040disk" becomes "/dev/disk/by-label/my disk".
func unescapeOctal(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+4 <= len(s) && isOctal(s[i+1:i+4]) {
			v, _ := strconv.ParseUint(s[i+1:i+4], 8, 8)
			b.WriteByte(byte(v))
			i += 3
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isOctal(s string) bool {
	for i := 0; i < 3; i++ {
		if s[i] < '0' || s[i] > '7' {
			return false
		}
	}
	return true
}

// sourceDevNode interprets a mount source as a device node path. Absolute
// sources are taken verbatim. Virtual filesystems report bare names like
// "tmpfs"; those only count when a node of that name actually exists under
// the device directory.
func (r *Resolver) sourceDevNode(source string) string {
	if strings.HasPrefix(source, "/") {
		return source
	}
	dev := filepath.Join(r.DevDir, source)
	if _, err := os.Stat(dev); err == nil {
		return dev
	}
	return ""
}
