package sourcepath

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Kind is the classification of a normalized path value. It is derived from
// the value's content by a single central classifier so that call sites never
// re-derive the rules ad hoc.
type Kind int

const (
	// KindNull is the empty value.
	KindNull Kind = iota

	// KindSourceAbsolute is a path rooted at the source tree ("//...").
	KindSourceAbsolute

	// KindSystemAbsolute is a path rooted at the host filesystem ("/...").
	KindSystemAbsolute

	// KindSystemDriveAbsolute is a system-absolute path with a folded drive
	// letter ("/C:/...").
	KindSystemDriveAbsolute
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindSourceAbsolute:
		return "source-absolute"
	case KindSystemAbsolute:
		return "system-absolute"
	case KindSystemDriveAbsolute:
		return "system-absolute (drive)"
	}
	return "unknown"
}

// classify derives the Kind of a normalized value string.
func classify(value string) Kind {
	switch {
	case value == "":
		return KindNull
	case strings.HasPrefix(value, "//"):
		return KindSourceAbsolute
	case len(value) >= 3 && value[0] == '/' && isDriveLetter(value[1]) && value[2] == ':':
		return KindSystemDriveAbsolute
	default:
		return KindSystemAbsolute
	}
}

// Dir represents a directory within the source tree. Non-null values begin
// and end in slashes.
//
// One leading slash means a system-absolute path; with drive letters the
// value looks like "/C:/foo/bar/". Two leading slashes mean a path relative
// to the source root.
type Dir struct {
	value string
}

// MakeDir constructs a Dir from a path string. Separators are normalized to
// forward slashes, drive-letter paths are folded into single-slash form, and
// the leading/trailing slash invariants are enforced. A string without any
// leading slash is interpreted as source-absolute.
func MakeDir(s string) Dir {
	if s == "" {
		return Dir{}
	}
	v := normalizeSeparators(s)
	if isDriveAbsolute(v) {
		v = "/" + v
	}
	if !strings.HasPrefix(v, "/") {
		v = "//" + v
	}
	if !strings.HasSuffix(v, "/") {
		v += "/"
	}
	return Dir{value: v}
}

// IsNull reports whether this is the degenerate empty value.
func (d Dir) IsNull() bool { return d.value == "" }

// Value returns the normalized string form.
func (d Dir) Value() string { return d.value }

// Kind returns the central three-way classification of this value.
func (d Dir) Kind() Kind { return classify(d.value) }

// IsSourceAbsolute reports whether the path starts with "//", indicating a
// path from the source root.
func (d Dir) IsSourceAbsolute() bool { return classify(d.value) == KindSourceAbsolute }

// IsSystemAbsolute reports whether the path is rooted at the host
// filesystem. It is the complement of IsSourceAbsolute.
func (d Dir) IsSystemAbsolute() bool { return !d.IsSourceAbsolute() }

// SourceAbsoluteWithOneSlash returns a source-absolute value with a single
// leading slash, for concatenating two source-absolute fragments without
// doubling separators.
//
// The directory must be source-absolute; anything else is a programming
// error and panics.
func (d Dir) SourceAbsoluteWithOneSlash() string {
	if !d.IsSourceAbsolute() {
		panic("sourcepath: SourceAbsoluteWithOneSlash on non-source-absolute dir " + strconv.Quote(d.value))
	}
	return d.value[1:]
}

// WithNoTrailingSlash returns the value without its trailing slash. The two
// roots "/" and "//" are returned unchanged.
func (d Dir) WithNoTrailingSlash() string {
	if len(d.value) > 2 {
		return d.value[:len(d.value)-1]
	}
	return d.value
}

// ResolveRelativeDir resolves input against this directory and returns the
// result as a Dir. See resolveRelative for the resolution rules; blame is
// carried opaquely into any returned error, and sourceRoot (which may be
// empty) enables rewriting system-absolute inputs that lie inside the tree.
func (d Dir) ResolveRelativeDir(input string, blame any, sourceRoot string) (Dir, error) {
	v, err := resolveRelative(d.value, input, false, sourceRoot, blame)
	if err != nil {
		return Dir{}, err
	}
	return Dir{value: v}, nil
}

// ResolveRelativeFile is like ResolveRelativeDir but produces a File: the
// result is required to have a final component and no trailing slash.
func (d Dir) ResolveRelativeFile(input string, blame any, sourceRoot string) (File, error) {
	v, err := resolveRelative(d.value, input, true, sourceRoot, blame)
	if err != nil {
		return File{}, err
	}
	return File{value: v}, nil
}

// HostPath joins this directory onto a concrete filesystem root and returns
// the host path in OS-native form. Source-absolute values are joined under
// sourceRoot; system-absolute values ignore it. The null value is an error.
func (d Dir) HostPath(sourceRoot string) (string, error) {
	if d.IsNull() {
		return "", &PathError{Err: ErrNullPath, Input: d.value}
	}
	return hostPath(d.value, sourceRoot), nil
}

// Compare returns the lexicographic order of the normalized strings. The
// order carries no path semantics; it exists to sort path collections
// deterministically.
func (d Dir) Compare(other Dir) int { return strings.Compare(d.value, other.value) }

func (d Dir) String() string { return d.value }

// hostPath converts a normalized value (dir or file) to an OS-native path.
func hostPath(value, sourceRoot string) string {
	if strings.HasPrefix(value, "//") {
		return filepath.Join(sourceRoot, filepath.FromSlash(value[2:]))
	}
	if classify(value) == KindSystemDriveAbsolute {
		// "/C:/foo" carries the drive in single-slash form; unfold it.
		return filepath.Clean(filepath.FromSlash(value[1:]))
	}
	return filepath.Clean(filepath.FromSlash(value))
}

// normalizeSeparators converts backslashes to forward slashes.
func normalizeSeparators(s string) string {
	return strings.ReplaceAll(s, `\`, "/")
}

func isDriveLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isDriveAbsolute reports whether s is a bare drive-letter path such as
// "C:" or "C:/foo" that needs folding into single-slash form.
func isDriveAbsolute(s string) bool {
	if len(s) < 2 || s[1] != ':' || !isDriveLetter(s[0]) {
		return false
	}
	return len(s) == 2 || s[2] == '/'
}
