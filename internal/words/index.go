package words

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/big"
	"time"
)

// Pick modes accepted by NewIndexSource.
const (
	PickFixed  = "fixed"
	PickRandom = "random"
	PickDaily  = "daily"
)

// IndexSource yields the selection index for a list of n words.
type IndexSource interface {
	Index(n int) int
}

// Fixed always yields the same index.
type Fixed int

func (f Fixed) Index(int) int { return int(f) }

// Random yields a cryptographically random index in [0, n).
type Random struct{}

func (Random) Index(n int) int {
	if n <= 0 {
		return 0
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(nBig.Int64())
}

// Daily yields the same index for everyone on a given UTC day.
type Daily struct {
	Salt string
	Now  func() time.Time // defaults to time.Now
}

func (d Daily) Index(n int) int {
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	return WordIndex(now(), d.Salt, n)
}

// NewIndexSource builds the source named by mode.
func NewIndexSource(mode string, fixed int, salt string) (IndexSource, error) {
	switch mode {
	case PickFixed, "":
		return Fixed(fixed), nil
	case PickRandom:
		return Random{}, nil
	case PickDaily:
		return Daily{Salt: salt}, nil
	default:
		return nil, fmt.Errorf("words: unknown pick mode %q", mode)
	}
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}
