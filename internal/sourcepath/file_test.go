package sourcepath

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeFile_Normalization(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"//foo/bar.cc", "//foo/bar.cc"},
		{"//foo/bar.cc/", "//foo/bar.cc"},
		{`//foo\bar.cc`, "//foo/bar.cc"},
		{"/usr/include/stdio.h", "/usr/include/stdio.h"},
		{`C:\src\a.cc`, "/C:/src/a.cc"},
		{"foo/bar.cc", "//foo/bar.cc"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MakeFile(tc.in).Value(), "MakeFile(%q)", tc.in)
	}
}

func TestMakeFile_RootIsNotAFile(t *testing.T) {
	t.Parallel()

	// A bare root has no final component, so it cannot name a file.
	assert.True(t, MakeFile("/").IsNull())
	assert.True(t, MakeFile("//").IsNull())
	assert.True(t, MakeFile("///").IsNull())
	assert.True(t, MakeFile(`\\`).IsNull())
}

func TestFile_DirOwnership(t *testing.T) {
	t.Parallel()

	f := MakeFile("//base/files/foo.cc")
	assert.Equal(t, "//base/files/", f.Dir().Value())
	assert.Equal(t, "foo.cc", f.Name())

	// A file directly under the source root is owned by "//".
	f = MakeFile("//foo.cc")
	assert.Equal(t, "//", f.Dir().Value())
	assert.Equal(t, "foo.cc", f.Name())

	// And directly under the system root by "/".
	f = MakeFile("/vmlinuz")
	assert.Equal(t, "/", f.Dir().Value())
	assert.Equal(t, "vmlinuz", f.Name())

	var null File
	assert.True(t, null.Dir().IsNull())
	assert.Equal(t, "", null.Name())
}

func TestFile_Ext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".cc", MakeFile("//a/foo.cc").Ext())
	assert.Equal(t, ".gz", MakeFile("//a/foo.tar.gz").Ext())
	assert.Equal(t, "", MakeFile("//a/Makefile").Ext())
	// A leading dot is a hidden file, not an extension.
	assert.Equal(t, "", MakeFile("//a/.config").Ext())
}

func TestFile_Classification(t *testing.T) {
	t.Parallel()

	assert.True(t, MakeFile("//a/b.cc").IsSourceAbsolute())
	assert.False(t, MakeFile("//a/b.cc").IsSystemAbsolute())
	assert.True(t, MakeFile("/a/b.cc").IsSystemAbsolute())
	assert.Equal(t, KindSystemDriveAbsolute, MakeFile("C:/a/b.cc").Kind())
}

func TestFile_HostPath(t *testing.T) {
	t.Parallel()

	root := filepath.FromSlash("/home/user/project")

	got, err := MakeFile("//base/a.cc").HostPath(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "base", "a.cc"), got)

	got, err = MakeFile("/etc/hosts").HostPath(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/etc/hosts"), got)

	_, err = File{}.HostPath(root)
	require.ErrorIs(t, err, ErrNullPath)
}
