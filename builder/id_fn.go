package builder

import (
	"strconv"
	"strings"
)

// IDFn generates a vertex name from its zero-based index.
// It must be pure: the same idx always yields the same name.
// Panics in implementations indicate a configuration error.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25].
// Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic("builder: SymbolIDFn index out of range [0,25]")
	}

	return string(rune('A' + idx))
}

// AlphanumericIDFn returns the base-36 form of idx, e.g. 35→"z", 36→"10".
// Panics if idx < 0.
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic("builder: AlphanumericIDFn negative index")
	}

	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnIDFn returns the spreadsheet column name for idx:
// 0→"A", 25→"Z", 26→"AA", 701→"ZZ", 702→"AAA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic("builder: ExcelColumnIDFn negative index")
	}
	var buf []byte
	for n := idx + 1; n > 0; {
		n--
		buf = append(buf, byte('A'+n%26))
		n /= 26
	}
	// digits were produced least-significant first
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// HexIDFn returns the lowercase hexadecimal form of idx, e.g. 255→"ff".
// Panics if idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic("builder: HexIDFn negative index")
	}

	return strconv.FormatInt(int64(idx), 16)
}

// SymbolNumberIDFn returns an IDFn producing prefix + decimal index,
// e.g. "v0", "v1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic("builder: SymbolNumberIDFn negative index")
		}
		var sb strings.Builder
		sb.Grow(len(prefix) + 4)
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(idx))

		return sb.String()
	}
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}
