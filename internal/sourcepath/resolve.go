package sourcepath

import "strings"

// resolveRelative resolves input against a base directory value and returns
// the normalized result string.
//
// Rules:
//
//   - empty input fails with ErrEmptyInput;
//   - a source-absolute input ("//...") is used as-is and base is ignored;
//     dot segments are still normalized, and ascending above the tree root
//     fails with ErrInvalidPath;
//   - a system-absolute input ("/..." or a drive-letter path, folded into
//     single-slash form) is kept unchanged unless sourceRoot is supplied and
//     the input lies underneath it by component prefix match, in which case
//     it is rewritten into source-absolute form;
//   - anything else is tree-relative and resolved against base's components,
//     with ascent above the base's root failing with ErrInvalidPath.
//
// asFile selects the trailing-separator discipline: files end without a
// slash, directories with exactly one. Mismatched trailing separators in
// input are corrected, not rejected.
//
// The function is pure; blame is carried opaquely into the returned error
// and never inspected.
func resolveRelative(base, input string, asFile bool, sourceRoot string, blame any) (string, error) {
	if input == "" {
		return "", &PathError{Err: ErrEmptyInput, Input: input, Blame: blame}
	}
	in := normalizeSeparators(input)
	if isDriveAbsolute(in) {
		in = "/" + in
	}

	switch {
	case strings.HasPrefix(in, "//"):
		return joinNormalized("//", nil, strings.Split(in[2:], "/"), asFile, input, blame)

	case strings.HasPrefix(in, "/"):
		if sourceRoot != "" {
			if rest, ok := underSourceRoot(in, sourceRoot); ok {
				return joinNormalized("//", nil, rest, asFile, input, blame)
			}
		}
		return joinNormalized("/", nil, strings.Split(in[1:], "/"), asFile, input, blame)

	default:
		if base == "" {
			return "", &PathError{Err: ErrNullPath, Input: input, Blame: blame}
		}
		prefix := "/"
		body := base[1:]
		if strings.HasPrefix(base, "//") {
			prefix = "//"
			body = base[2:]
		}
		return joinNormalized(prefix, splitNonEmpty(body), strings.Split(in, "/"), asFile, input, blame)
	}
}

// joinNormalized applies "." and ".." segment resolution of rel on top of
// the base components and joins the result under prefix ("/" or "//").
func joinNormalized(prefix string, base, rel []string, asFile bool, input string, blame any) (string, error) {
	comps := make([]string, len(base), len(base)+len(rel))
	copy(comps, base)

	for _, seg := range rel {
		switch seg {
		case "", ".":
			// Empty segments come from doubled or trailing separators.
		case "..":
			if len(comps) == 0 {
				return "", &PathError{Err: ErrInvalidPath, Input: input, Blame: blame}
			}
			comps = comps[:len(comps)-1]
		default:
			comps = append(comps, seg)
		}
	}

	if asFile {
		// A file needs a final component; a bare root is not a file.
		if len(comps) == 0 {
			return "", &PathError{Err: ErrInvalidPath, Input: input, Blame: blame}
		}
		return prefix + strings.Join(comps, "/"), nil
	}
	if len(comps) == 0 {
		return prefix, nil
	}
	return prefix + strings.Join(comps, "/") + "/", nil
}

// underSourceRoot reports whether the system-absolute value in lies inside
// sourceRoot, matching whole components case-sensitively. On a match it
// returns the remaining components below the root.
func underSourceRoot(in, sourceRoot string) ([]string, bool) {
	r := normalizeSeparators(sourceRoot)
	if isDriveAbsolute(r) {
		r = "/" + r
	}
	if !strings.HasPrefix(r, "/") {
		return nil, false
	}
	rootComps := splitNonEmpty(strings.TrimLeft(r, "/"))
	inComps := splitNonEmpty(in[1:])
	if len(inComps) < len(rootComps) {
		return nil, false
	}
	for i := range rootComps {
		if inComps[i] != rootComps[i] {
			return nil, false
		}
	}
	return inComps[len(rootComps):], true
}

// splitNonEmpty splits s on slashes, dropping empty segments.
func splitNonEmpty(s string) []string {
	parts := strings.Split(s, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
