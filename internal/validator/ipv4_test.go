package validator

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidIPv4(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"0.0.0.0", true},
		{"255.255.255.255", true},
		{"192.168.1.1", true},
		{"1.2.3.4", true},

		{"", false},
		{"192.168.1", false},     // 3 segments
		{"192.168.1.1.1", false}, // 5 segments
		{"192.168..1", false},    // empty segment
		{".192.168.1.1", false},  // leading dot
		{"192.168.1.1.", false},  // trailing dot
		{"192.168.01.1", false},  // leading zero
		{"192.168.00.1", false},  // leading zero
		{"192.168.1.256", false}, // out of range
		{"1234.1.1.1", false},    // too many digits
		{"1a2.168.1.1", false},   // embedded non-digit
		{" 192.168.1.1", false},  // leading whitespace
		{"192.168.1.1 ", false},  // trailing whitespace
		{"-1.168.1.1", false},    // sign
		{"0x10.168.1.1", false},  // hex
		{"::1", false},           // not dotted-quad
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, IsValidIPv4(tc.in))
		})
	}
}

func TestIsValidIPv4AllOctetBoundaries(t *testing.T) {
	for _, octet := range []int{0, 1, 9, 10, 99, 100, 199, 200, 249, 250, 255} {
		addr := fmt.Sprintf("%d.%d.%d.%d", octet, octet, octet, octet)
		require.True(t, IsValidIPv4(addr), addr)
	}
	for _, octet := range []int{256, 300, 999} {
		addr := fmt.Sprintf("%d.0.0.%d", octet, octet)
		require.False(t, IsValidIPv4(addr), addr)
	}
}

func TestFastAddrValidate(t *testing.T) {
	v := NewAddr()
	ok, _, err := v.Validate(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, _, err = v.Validate(context.Background(), "10.0.0.256")
	require.NoError(t, err)
	require.False(t, ok)
}
