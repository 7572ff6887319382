package correlation

import (
	"crypto/rand"
	"io"
	mrand "math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Header is the header outbound requests carry the correlation id under.
const Header = "X-CORRELATION-ID"

// Generator produces a new correlation id.
type Generator func() string

// NewID returns a new collision-resistant correlation id.
func NewID() string {
	return newID(rand.Reader)
}

func newID(r io.Reader) string {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return fallbackID()
	}
	return id.String()
}

// fallbackID has the same shape on every call: "<unix-nanos>-<hex>".
func fallbackID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10) + "-" + strconv.FormatUint(mrand.Uint64(), 16)
}
