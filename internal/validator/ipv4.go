package validator

import (
	"context"
	"strings"
	"time"

	"svw.info/gridcheck/internal/ports"
)

const (
	ipv4Segments  = 4
	ipv4MaxDigits = 3
	ipv4MaxOctet  = 255
)

// IsValidIPv4 reports whether candidate is a strict dotted-quad IPv4
// address: exactly four dot-separated segments, each 1-3 ASCII digits,
// valued 0-255, with no leading zero unless the segment is exactly "0".
//
// Splitting on '.' turns a leading, trailing, or doubled dot into an
// empty segment, which fails the length check; no special casing needed.
// Stricter than net.ParseIP, which also admits IPv6 forms.
func IsValidIPv4(candidate string) bool {
	segs := strings.Split(candidate, ".")
	if len(segs) != ipv4Segments {
		return false
	}
	for _, seg := range segs {
		if len(seg) == 0 || len(seg) > ipv4MaxDigits {
			return false
		}
		if len(seg) > 1 && seg[0] == '0' {
			return false
		}
		val := 0
		for i := 0; i < len(seg); i++ {
			ch := seg[i]
			if ch < '0' || ch > '9' {
				return false
			}
			val = val*10 + int(ch-'0')
		}
		if val > ipv4MaxOctet {
			return false
		}
	}
	return true
}

// FastAddr wraps IsValidIPv4 behind the ports.AddrValidator interface.
type FastAddr struct{}

func NewAddr() *FastAddr { return &FastAddr{} }

func (v *FastAddr) Validate(ctx context.Context, candidate string) (bool, ports.Stats, error) {
	start := time.Now()
	ok := IsValidIPv4(candidate)
	return ok, ports.Stats{Duration: time.Since(start)}, nil
}
