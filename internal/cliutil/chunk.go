package cliutil

import "unicode/utf16"

// ToUTF16 converts UTF-8 text to UTF-16 code units, the unit the
// session engine and the one-shot XML splitter both process. This is
// a precise code-point-width conversion done once at the process
// boundary, not a text-processing policy.
func ToUTF16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// Chunks splits units into consecutive slices of at most size code
// units each (size <= 0 yields the whole input as one chunk). It
// never splits inside a surrogate pair, since size-bounded slicing
// here only ever runs on whole-rune-encoded input from ToUTF16.
func Chunks(units []uint16, size int) [][]uint16 {
	if size <= 0 || len(units) <= size {
		if len(units) == 0 {
			return nil
		}
		return [][]uint16{units}
	}
	out := make([][]uint16, 0, (len(units)+size-1)/size)
	for i := 0; i < len(units); {
		end := i + size
		if end > len(units) {
			end = len(units)
		}
		// avoid splitting a surrogate pair across chunks: a chunk that
		// would end on a high surrogate stops one unit earlier
		if end < len(units) && units[end-1] >= 0xD800 && units[end-1] < 0xDC00 {
			end--
			if end <= i {
				end = i + size
			}
		}
		out = append(out, units[i:end])
		i = end
	}
	return out
}
