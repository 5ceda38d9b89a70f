package blake

import "encoding/binary"

// Hasher binds an Algorithm and a salt and turns byte content into the
// canonical hex digest. It is immutable and safe to reuse across files.
type Hasher struct {
	alg  Algorithm
	salt []byte
}

// NewHasher packs the four salt words to the variant's word width. Salt
// components wider than the word are truncated.
func NewHasher(alg Algorithm, salt [4]uint64) *Hasher {
	return &Hasher{alg: alg, salt: packSalt(alg, salt)}
}

// Sum hashes content and returns the hex digest.
func (h *Hasher) Sum(content []byte) string {
	d := h.alg.newHash(h.salt)
	d.Write(content)
	return FormatWords(sumWords(h.alg, d.Sum(nil)), h.alg.WordBits)
}

// packSalt encodes the salt words big-endian, the layout the primitives
// load them back from.
func packSalt(alg Algorithm, salt [4]uint64) []byte {
	out := make([]byte, 4*alg.WordBits/8)
	for i, w := range salt {
		if alg.WordBits == 32 {
			binary.BigEndian.PutUint32(out[i*4:], uint32(w))
		} else {
			binary.BigEndian.PutUint64(out[i*8:], w)
		}
	}
	return out
}

// sumWords splits the primitive's big-endian byte output back into digest
// words.
func sumWords(alg Algorithm, sum []byte) []uint64 {
	words := make([]uint64, alg.Words)
	for i := range words {
		if alg.WordBits == 32 {
			words[i] = uint64(binary.BigEndian.Uint32(sum[i*4:]))
		} else {
			words[i] = binary.BigEndian.Uint64(sum[i*8:])
		}
	}
	return words
}
