package blake

import (
	"fmt"
	"strings"
)

// FormatWords renders digest words as lowercase hex, each zero-padded to
// wordBits/4 characters and concatenated in order.
func FormatWords(words []uint64, wordBits int) string {
	var b strings.Builder
	b.Grow(len(words) * wordBits / 4)
	for _, w := range words {
		fmt.Fprintf(&b, "%0*x", wordBits/4, w)
	}
	return b.String()
}
