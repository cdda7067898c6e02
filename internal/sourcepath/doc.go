// Package sourcepath models paths inside a build source tree.
//
// Every value is a normalized, slash-separated string in one of three
// domains:
//
//   - source-absolute: two leading slashes, rooted at the source tree
//     (e.g. "//base/files/").
//   - system-absolute: one leading slash, rooted at the host filesystem.
//     On systems with drive letters the drive is folded into the value,
//     e.g. "/C:/src/project/".
//   - tree-relative: an unresolved input string, meaningful only relative
//     to some base directory. Tree-relative strings never become Dir or
//     File values directly; they are resolved first.
//
// Dir values begin and end with a slash (except the null value and the two
// roots "/" and "//"); File values never end with a slash. Both are plain
// comparable value types, safe to copy and to use as map keys.
//
// The package performs no I/O: no globbing, no symlink resolution, no
// existence checks. Converting a resolved value onto the host filesystem is
// a pure string operation (HostPath).
package sourcepath
