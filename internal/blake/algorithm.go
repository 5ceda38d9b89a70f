package blake

import (
	"errors"
	"fmt"
	"hash"

	"github.com/dchest/blake256"
	"github.com/dchest/blake512"
)

// ErrAlgorithmSize is returned for a digest size outside the BLAKE family.
var ErrAlgorithmSize = errors.New("unavailable algorithm size")

// Algorithm describes one BLAKE variant: its output size, word layout and
// the salted constructor for the underlying primitive.
type Algorithm struct {
	Bits     int // digest size in bits
	WordBits int // 32 or 64
	Words    int // digest length in words

	newHash func(salt []byte) hash.Hash
}

// Resolve maps a digest size in bits to its Algorithm. Sizes other than
// 224, 256, 384 and 512 fail with ErrAlgorithmSize.
func Resolve(bits int) (Algorithm, error) {
	switch bits {
	case 224:
		return Algorithm{Bits: 224, WordBits: 32, Words: 7, newHash: blake256.New224Salt}, nil
	case 256:
		return Algorithm{Bits: 256, WordBits: 32, Words: 8, newHash: blake256.NewSalt}, nil
	case 384:
		return Algorithm{Bits: 384, WordBits: 64, Words: 6, newHash: blake512.New384Salt}, nil
	case 512:
		return Algorithm{Bits: 512, WordBits: 64, Words: 8, newHash: blake512.NewSalt}, nil
	default:
		return Algorithm{}, fmt.Errorf("%w: %d", ErrAlgorithmSize, bits)
	}
}

// HexLen is the length of the canonical hex digest for this variant.
func (a Algorithm) HexLen() int { return a.Words * a.WordBits / 4 }
