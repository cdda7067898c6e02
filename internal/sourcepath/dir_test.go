package sourcepath

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeDir_Normalization(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"//", "//"},
		{"/", "/"},
		{"//foo", "//foo/"},
		{"//foo/", "//foo/"},
		{"/foo/bar", "/foo/bar/"},
		{`//foo\bar`, "//foo/bar/"},
		{"C:/src", "/C:/src/"},
		{`C:\src\project`, "/C:/src/project/"},
		{"foo/bar", "//foo/bar/"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MakeDir(tc.in).Value(), "MakeDir(%q)", tc.in)
	}
}

func TestDir_Kind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindNull, Dir{}.Kind())
	assert.Equal(t, KindSourceAbsolute, MakeDir("//foo/").Kind())
	assert.Equal(t, KindSystemAbsolute, MakeDir("/foo/").Kind())
	assert.Equal(t, KindSystemDriveAbsolute, MakeDir("C:/src/").Kind())
	assert.Equal(t, KindSystemDriveAbsolute, MakeDir("/C:/src/").Kind())
}

func TestDir_Classification(t *testing.T) {
	t.Parallel()

	srcAbs := MakeDir("//base/files/")
	require.True(t, srcAbs.IsSourceAbsolute())
	require.False(t, srcAbs.IsSystemAbsolute())

	sysAbs := MakeDir("/usr/local/")
	require.False(t, sysAbs.IsSourceAbsolute())
	require.True(t, sysAbs.IsSystemAbsolute())

	// The null value is not source-absolute, so it classifies as
	// system-absolute, matching the complement rule.
	var null Dir
	require.True(t, null.IsNull())
	require.False(t, null.IsSourceAbsolute())
	require.True(t, null.IsSystemAbsolute())
}

func TestDir_SourceAbsoluteWithOneSlash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/a/b/", MakeDir("//a/b/").SourceAbsoluteWithOneSlash())
	assert.Equal(t, "/", MakeDir("//").SourceAbsoluteWithOneSlash())

	// Calling it on a system-absolute value is a programming error.
	require.Panics(t, func() {
		MakeDir("/a/b/").SourceAbsoluteWithOneSlash()
	})
}

func TestDir_WithNoTrailingSlash(t *testing.T) {
	t.Parallel()

	// The two canonical roots are returned unchanged.
	assert.Equal(t, "//", MakeDir("//").WithNoTrailingSlash())
	assert.Equal(t, "/", MakeDir("/").WithNoTrailingSlash())

	assert.Equal(t, "//a", MakeDir("//a/").WithNoTrailingSlash())
	assert.Equal(t, "//a/b", MakeDir("//a/b/").WithNoTrailingSlash())
	assert.Equal(t, "/a", MakeDir("/a/").WithNoTrailingSlash())
}

func TestDir_HostPath(t *testing.T) {
	t.Parallel()

	root := filepath.FromSlash("/home/user/project")

	got, err := MakeDir("//base/files/").HostPath(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "base", "files"), got)

	// The source root itself.
	got, err = MakeDir("//").HostPath(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(root), got)

	// System-absolute values ignore the source root.
	got, err = MakeDir("/usr/local/").HostPath(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/usr/local"), got)

	// Drive-letter values are unfolded from single-slash form.
	got, err = MakeDir("/C:/src/").HostPath(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("C:/src"), got)

	// The null value is an error.
	_, err = Dir{}.HostPath(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNullPath)
}

func TestDir_CompareOrdering(t *testing.T) {
	t.Parallel()

	dirs := []Dir{
		MakeDir("//c/"),
		MakeDir("//a/"),
		MakeDir("/z/"),
		MakeDir("//b/"),
	}
	slices.SortFunc(dirs, Dir.Compare)

	var got []string
	for _, d := range dirs {
		got = append(got, d.Value())
	}
	// "//" sorts after "/" lexicographically; no path semantics implied.
	assert.Equal(t, []string{"//a/", "//b/", "//c/", "/z/"}, got)

	assert.Equal(t, 0, MakeDir("//a/").Compare(MakeDir("//a/")))
}
