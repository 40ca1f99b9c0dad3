// Package daily picks a deterministic "word of the day" so every run on the
// same UTC date draws the same target.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"io"
	"time"
)

// DefaultSalt is used when no DAILY_SALT is configured.
const DefaultSalt = "local_dev_salt"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex maps the UTC date of day onto [0, poolLen). The key is
// HMAC-SHA256(salt, YYYY-MM-DD); its leading 8 bytes, read big-endian,
// are reduced modulo poolLen.
func WordIndex(day time.Time, salt string, poolLen int) int {
	if poolLen <= 0 {
		return 0
	}
	mac := hmac.New(sha256.New, []byte(salt))
	_, _ = io.WriteString(mac, DateKey(day))
	return int(binary.BigEndian.Uint64(mac.Sum(nil)) % uint64(poolLen))
}

// Picker returns a target picker bound to the date of now.
// The result satisfies game.Picker.
func Picker(now func() time.Time, salt string) func(n int) int {
	if now == nil {
		now = time.Now
	}
	return func(n int) int { return WordIndex(now(), salt, n) }
}
