package blkpath

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMountInfoLine(t *testing.T) {
	entry, err := parseMountInfoLine("36 35 98:0 /mnt1 /mnt2 rw,noatime master:1 - ext3 /dev/sdb1 rw,errors=continue")
	require.NoError(t, err)
	assert.Equal(t, DevID{Major: 98, Minor: 0}, entry.id)
	assert.Equal(t, "/mnt2", entry.mountPoint)
	assert.Equal(t, "/dev/sdb1", entry.source)
	assert.Equal(t, "rw,noatime", entry.options)
}

func TestParseMountInfoLineMultipleOptionalFields(t *testing.T) {
	entry, err := parseMountInfoLine("41 22 8:16 / /backup rw shared:5 master:2 - ext4 /dev/sdb rw")
	require.NoError(t, err)
	assert.Equal(t, DevID{Major: 8, Minor: 16}, entry.id)
	assert.Equal(t, "/dev/sdb", entry.source)
}

func TestParseMountInfoLineEscapedSource(t *testing.T) {
	entry, err := parseMountInfoLine(`42 22 8:17 / /mnt/img rw - ext4 /dev/disk/by-label/my\040disk rw`)
	require.NoError(t, err)
	assert.Equal(t, "/dev/disk/by-label/my disk", entry.source)
}

func TestParseMountInfoLineMalformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too few fields", "36 35 98:0 / /mnt"},
		{"bad device field", "36 35 banana / /mnt rw shared:1 - ext3 /dev/sdb1 rw"},
		{"major not a number", "36 35 x:0 / /mnt rw shared:1 - ext3 /dev/sdb1 rw"},
		{"minor not a number", "36 35 98: / /mnt rw shared:1 - ext3 /dev/sdb1 rw"},
		{"missing separator", "36 35 98:0 / /mnt rw shared:1 ext3 /dev/sdb1 rw unbound"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseMountInfoLine(tt.line)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.line, perr.Line)
		})
	}
}

func TestUnescapeOctal(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`/dev/plain`, `/dev/plain`},
		{`with\040space`, `with space`},
		{`tab\011here`, "tab\there"},
		{`back\134slash`, `back\slash`},
		{`multi\040esc\040apes`, `multi esc apes`},
		{`trailing\04`, `trailing\04`},
		{`not\999octal`, `not\999octal`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, unescapeOctal(tt.in), "input %q", tt.in)
	}
}

func TestScanMountInfoMatch(t *testing.T) {
	r := New()
	mountinfo := strings.Join([]string{
		"22 26 0:21 / /dev/shm rw,nosuid shared:3 - tmpfs tmpfs rw",
		"29 1 98:0 / /data rw,relatime shared:1 - ext4 /dev/sdb1 rw",
	}, "\n")
	dev, err := r.scanMountInfo(strings.NewReader(mountinfo), DevID{Major: 98, Minor: 0})
	require.NoError(t, err)
	assert.Equal(t, "/dev/sdb1", dev)
}

func TestScanMountInfoLastMatchWins(t *testing.T) {
	r := New()
	mountinfo := strings.Join([]string{
		"29 1 98:0 / /data rw shared:1 - ext4 /dev/sdb1 rw",
		"44 29 98:0 / /data/bind rw shared:1 - ext4 /dev/sdb1-later rw",
	}, "\n")
	dev, err := r.scanMountInfo(strings.NewReader(mountinfo), DevID{Major: 98, Minor: 0})
	require.NoError(t, err)
	assert.Equal(t, "/dev/sdb1-later", dev)
}

func TestScanMountInfoNoMatch(t *testing.T) {
	r := New()
	dev, err := r.scanMountInfo(strings.NewReader("29 1 8:1 / / rw shared:1 - ext4 /dev/sda1 rw"), DevID{Major: 98, Minor: 0})
	require.NoError(t, err)
	assert.Empty(t, dev)
}

func TestScanMountInfoMalformedLineFails(t *testing.T) {
	r := New()
	mountinfo := "29 1 8:1 / / rw shared:1 - ext4 /dev/sda1 rw\ngarbage line\n"
	_, err := r.scanMountInfo(strings.NewReader(mountinfo), DevID{Major: 8, Minor: 1})
	var perr *ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestScanMountInfoRelativeSource(t *testing.T) {
	devDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(devDir, "ram0"), nil, 0644))
	r := &Resolver{DevDir: devDir}

	// Node exists under the device directory, so the bare name counts.
	dev, err := r.scanMountInfo(strings.NewReader("29 1 1:0 / /mnt rw shared:1 - ramfs ram0 rw"), DevID{Major: 1, Minor: 0})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(devDir, "ram0"), dev)

	// tmpfs has no node, the entry cannot name a device.
	dev, err = r.scanMountInfo(strings.NewReader("22 26 0:21 / /dev/shm rw shared:3 - tmpfs tmpfs rw"), DevID{Major: 0, Minor: 21})
	require.NoError(t, err)
	assert.Empty(t, dev)
}

func TestResolveMountInfoMissingFile(t *testing.T) {
	r := &Resolver{MountInfoPath: filepath.Join(t.TempDir(), "mountinfo")}
	dev, err := r.resolveMountInfo(DevID{Major: 8, Minor: 1})
	require.NoError(t, err)
	assert.Empty(t, dev)
}

func TestResolveMountInfoFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mountinfo")
	require.NoError(t, os.WriteFile(path, []byte("29 1 98:0 / /data rw shared:1 - ext4 /dev/sdb1 rw\n"), 0644))
	r := &Resolver{MountInfoPath: path}

	dev, err := r.resolveMountInfo(DevID{Major: 98, Minor: 0})
	require.NoError(t, err)
	assert.Equal(t, "/dev/sdb1", dev)
}

func TestParseErrorMessage(t *testing.T) {
	err := error(&ParseError{Line: "bad", Reason: "fewer than 10 fields"})
	assert.Contains(t, err.Error(), "bad")
	assert.Contains(t, err.Error(), "fewer than 10 fields")
	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
}
