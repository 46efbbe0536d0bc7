package cliutil

import "github.com/clipperhouse/uax29/v2/words"

// WordCount returns an approximate Unicode word/grapheme count over a
// run of text, used only by the CLI's --stats reporting side channel.
// The segmentation engine itself never performs this kind of
// Unicode-aware boundary analysis.
func WordCount(text string) int {
	count := 0
	seg := words.FromBytes([]byte(text))
	for seg.Next() {
		count++
	}
	return count
}
