package discovery

import (
	"net"
	"testing"

	"github.com/grandcat/zeroconf"
	"github.com/stretchr/testify/assert"
)

func TestPickAddr(t *testing.T) {
	tests := []struct {
		name     string
		entry    *zeroconf.ServiceEntry
		expected string
	}{
		{
			name:     "nil entry",
			entry:    nil,
			expected: "",
		},
		{
			name:     "no addresses",
			entry:    &zeroconf.ServiceEntry{Port: 9000},
			expected: "",
		},
		{
			name: "ipv4 preferred over ipv6",
			entry: &zeroconf.ServiceEntry{
				Port:     9000,
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.20")},
				AddrIPv6: []net.IP{net.ParseIP("fe80::1")},
			},
			expected: "192.168.1.20:9000",
		},
		{
			name: "ipv6 when no ipv4",
			entry: &zeroconf.ServiceEntry{
				Port:     8088,
				AddrIPv6: []net.IP{net.ParseIP("fd00::7")},
			},
			expected: "[fd00::7]:8088",
		},
		{
			name: "unspecified addresses are skipped",
			entry: &zeroconf.ServiceEntry{
				Port:     9000,
				AddrIPv4: []net.IP{net.IPv4zero, net.ParseIP("10.0.0.5")},
			},
			expected: "10.0.0.5:9000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pickAddr(tt.entry))
		})
	}
}

func TestFallbackAddr(t *testing.T) {
	assert.Equal(t, "127.0.0.1:9000", fallbackAddr(9000))
}
