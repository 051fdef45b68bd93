package id

import (
	"crypto/rand"
	"strings"

	"github.com/oklog/ulid/v2"
)

// New generates a new ULID string. ULIDs are lexicographically sortable
// by creation time, so outbound Message-IDs sort in send order.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// MessageID returns an RFC 5322 Message-ID for mail sent from the given
// address, e.g. <01J...@gmail.com>.
func MessageID(from string) string {
	host := "localhost"
	if _, h, ok := strings.Cut(from, "@"); ok && h != "" {
		host = h
	}
	return "<" + New() + "@" + host + ">"
}
