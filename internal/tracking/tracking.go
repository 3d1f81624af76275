// Package tracking generates the public reference numbers handed to
// candidates, of the form CD-2025-7XK9QF.
package tracking

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"time"
)

// Prefix identifies the issuing organisation in every code.
const Prefix = "CD"

// alphabet deliberately drops 0/O/1/I/L so codes survive being read over
// the phone or copied by hand.
const alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const suffixLen = 6

// Pattern matches any well-formed tracking code.
var Pattern = regexp.MustCompile(`^[A-Z]{2,3}-\d{4}-[A-Z2-9]{6}$`)

// NewCode returns a fresh tracking code for the current year. It does not
// check for collisions; the unique index on applications.tracking_code is
// the authority, and the caller retries on conflict.
func NewCode() string {
	return NewCodeAt(time.Now())
}

// NewCodeAt is NewCode with an explicit clock, for tests.
func NewCodeAt(now time.Time) string {
	buf := make([]byte, suffixLen)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the OS entropy source is broken;
		// nothing sensible can continue.
		panic(fmt.Sprintf("tracking: rand.Read: %v", err))
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return fmt.Sprintf("%s-%d-%s", Prefix, now.Year(), buf)
}
