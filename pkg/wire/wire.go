// Package wire flattens and restores segment.Segment slices to and
// from the flat int32 triple encoding used across the facade boundary
// (tag, start, end, tag, start, end, ...), mirroring the JNI
// int-array layout this engine's segment model was designed against.
package wire

import "streamseg/pkg/segment"

// Flatten encodes segs as a flat slice of (tag, start, end) int32
// triples, in order.
func Flatten(segs []segment.Segment) []int32 {
	out := make([]int32, 0, len(segs)*3)
	for _, s := range segs {
		out = append(out, int32(s.Tag), int32(s.Start), int32(s.End))
	}
	return out
}

// Unflatten decodes a flat (tag, start, end) triple slice back into
// segment.Segment values. It panics if flat's length is not a
// multiple of 3, since that indicates a corrupted wire payload rather
// than a recoverable runtime condition.
func Unflatten(flat []int32) []segment.Segment {
	if len(flat)%3 != 0 {
		panic("wire: flattened segment slice length is not a multiple of 3")
	}
	out := make([]segment.Segment, 0, len(flat)/3)
	for i := 0; i < len(flat); i += 3 {
		out = append(out, segment.Segment{
			Tag:   segment.Tag(flat[i]),
			Start: int(flat[i+1]),
			End:   int(flat[i+2]),
		})
	}
	return out
}
