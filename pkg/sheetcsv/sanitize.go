package sheetcsv

import "strings"

// SanitizeName maps a sheet name to a safe file-name fragment by replacing
// every character that is illegal in a file name with '_'. The Windows set is
// used on every platform so outputs stay portable. The mapping is idempotent:
// SanitizeName(SanitizeName(x)) == SanitizeName(x).
//
// Two distinct names can sanitize to the same fragment; deduplication is the
// target builder's job, not this function's.
func SanitizeName(name string) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '?', '*', ':', '|', '"', '<', '>':
			return '_'
		}
		if r < 0x20 || r == 0x7f {
			return '_'
		}
		return r
	}, name)

	clean = strings.TrimSpace(clean)
	if clean == "" {
		return "sheet"
	}
	return clean
}
