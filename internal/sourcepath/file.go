package sourcepath

import "strings"

// File represents a file within the source tree. Non-null values begin with
// a slash (one for system-absolute, two for source-absolute) and never end
// in one. Every file has exactly one owning directory prefix, returned by
// Dir.
type File struct {
	value string
}

// MakeFile constructs a File from a path string, normalizing separators,
// folding drive letters, and stripping any trailing slashes. A string
// without a leading slash is interpreted as source-absolute. The bare roots
// "/" and "//" have no final component and yield the null value.
func MakeFile(s string) File {
	if s == "" {
		return File{}
	}
	v := normalizeSeparators(s)
	if isDriveAbsolute(v) {
		v = "/" + v
	}
	if !strings.HasPrefix(v, "/") {
		v = "//" + v
	}
	for len(v) > 2 && strings.HasSuffix(v, "/") {
		v = v[:len(v)-1]
	}
	if v == "/" || v == "//" {
		return File{}
	}
	return File{value: v}
}

// IsNull reports whether this is the degenerate empty value.
func (f File) IsNull() bool { return f.value == "" }

// Value returns the normalized string form.
func (f File) Value() string { return f.value }

// Kind returns the central three-way classification of this value.
func (f File) Kind() Kind { return classify(f.value) }

// IsSourceAbsolute reports whether the path starts with "//", indicating a
// path from the source root.
func (f File) IsSourceAbsolute() bool { return classify(f.value) == KindSourceAbsolute }

// IsSystemAbsolute reports whether the path is rooted at the host
// filesystem. It is the complement of IsSourceAbsolute.
func (f File) IsSystemAbsolute() bool { return !f.IsSourceAbsolute() }

// Dir returns the owning directory prefix: everything through the last
// slash. For the null value it returns the null Dir.
func (f File) Dir() Dir {
	i := strings.LastIndexByte(f.value, '/')
	if i < 0 {
		return Dir{}
	}
	return Dir{value: f.value[:i+1]}
}

// Name returns the final path component, or "" for the null value.
func (f File) Name() string {
	i := strings.LastIndexByte(f.value, '/')
	return f.value[i+1:]
}

// Ext returns the file name extension including the leading dot, or "" if
// the name has none.
func (f File) Ext() string {
	name := f.Name()
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[i:]
	}
	return ""
}

// HostPath joins this file onto a concrete filesystem root and returns the
// host path in OS-native form. The null value is an error.
func (f File) HostPath(sourceRoot string) (string, error) {
	if f.IsNull() {
		return "", &PathError{Err: ErrNullPath, Input: f.value}
	}
	return hostPath(f.value, sourceRoot), nil
}

// Compare returns the lexicographic order of the normalized strings, used
// only for deterministic sorting.
func (f File) Compare(other File) int { return strings.Compare(f.value, other.value) }

func (f File) String() string { return f.value }
