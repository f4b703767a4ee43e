// Package discovery lets desktop client instances locate a shared backend
// on a local network. The server advertises an mDNS service record; clients
// browse for it and fall back to localhost when nothing answers in time.
package discovery

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"
)

const serviceType = "_freight._tcp"

// Advertiser publishes the backend's service record on the LAN.
type Advertiser struct {
	server *zeroconf.Server
	logger *zap.Logger
}

// Advertise registers the service record. Failure is logged, never fatal:
// discovery is a convenience, the backend stays reachable by address.
func Advertise(name string, port int, logger *zap.Logger) *Advertiser {
	hostname, _ := os.Hostname()
	txt := []string{
		"host=" + hostname,
		"ip=" + lanIP(),
		"updated=" + time.Now().UTC().Format(time.RFC3339),
	}

	server, err := zeroconf.Register(
		fmt.Sprintf("%s (%s)", name, hostname),
		serviceType,
		"local.",
		port,
		txt,
		nil,
	)
	if err != nil {
		logger.Warn("mdns advertisement failed", zap.Error(err))
		return &Advertiser{logger: logger}
	}

	logger.Info("mdns advertisement started",
		zap.String("service", serviceType),
		zap.Int("port", port))
	return &Advertiser{server: server, logger: logger}
}

func (a *Advertiser) Stop() {
	if a.server != nil {
		a.server.Shutdown()
		a.logger.Info("mdns advertisement stopped")
	}
}

// Discover browses for an advertised backend and returns its host:port.
// When nothing answers before the timeout it falls back to localhost on
// the given default port.
func Discover(ctx context.Context, timeout time.Duration, defaultPort int) string {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return fallbackAddr(defaultPort)
	}

	entries := make(chan *zeroconf.ServiceEntry, 4)
	browseCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := resolver.Browse(browseCtx, serviceType, "local.", entries); err != nil {
		return fallbackAddr(defaultPort)
	}

	for {
		select {
		case entry, ok := <-entries:
			if !ok {
				return fallbackAddr(defaultPort)
			}
			if addr := pickAddr(entry); addr != "" {
				return addr
			}
		case <-browseCtx.Done():
			return fallbackAddr(defaultPort)
		}
	}
}

// pickAddr extracts a dialable address from a service entry, preferring
// IPv4 records.
func pickAddr(entry *zeroconf.ServiceEntry) string {
	if entry == nil {
		return ""
	}
	for _, ip := range entry.AddrIPv4 {
		if ip != nil && !ip.IsUnspecified() {
			return net.JoinHostPort(ip.String(), strconv.Itoa(entry.Port))
		}
	}
	for _, ip := range entry.AddrIPv6 {
		if ip != nil && !ip.IsUnspecified() {
			return net.JoinHostPort(ip.String(), strconv.Itoa(entry.Port))
		}
	}
	return ""
}

func fallbackAddr(port int) string {
	return net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
}

// lanIP returns the first non-loopback, non-link-local IPv4 address.
func lanIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "127.0.0.1"
	}
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() || ipNet.IP.IsLinkLocalUnicast() {
			continue
		}
		if ip4 := ipNet.IP.To4(); ip4 != nil {
			return ip4.String()
		}
	}
	return "127.0.0.1"
}
