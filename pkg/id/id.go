package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu   sync.Mutex
	mono io.Reader

	epoch = time.Unix(0, 0)
)

func init() {
	// Monotonic entropy keeps IDs minted within one millisecond ordered.
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	mono = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// New returns a trade ID stamped with the current time.
func New() string {
	return NewAt(time.Now())
}

// NewAt returns a trade ID whose timestamp part is t. Trade IDs sort by
// creation time, so listing a journal by ID lists it chronologically.
// Times outside the ULID range (including the zero time) are clamped to
// its bounds.
func NewAt(t time.Time) string {
	ms := timestamp(t)

	mu.Lock()
	defer mu.Unlock()

	id, err := ulid.New(ms, mono)
	if err != nil {
		// monotonic entropy exhausted within this millisecond
		id = ulid.MustNew(ms, cryptoRand.Reader)
	}
	return id.String()
}

func timestamp(t time.Time) uint64 {
	if t.Before(epoch) {
		return 0
	}
	if t.After(ulid.Time(ulid.MaxTime())) {
		return ulid.MaxTime()
	}
	return ulid.Timestamp(t.UTC())
}

// Time extracts the creation time encoded in a trade ID.
func Time(s string) (time.Time, error) {
	u, err := ulid.Parse(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse trade id %q: %w", s, err)
	}
	return ulid.Time(u.Time()).UTC(), nil
}
