// Command discover browses the local network for an advertised backend and
// prints its address, falling back to localhost when nothing answers. Client
// launchers shell out to it instead of hardcoding a host.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/freightworks/freight-backend/internal/discovery"
)

func main() {
	timeout := flag.Duration("timeout", 3*time.Second, "how long to browse before falling back")
	port := flag.Int("port", 9000, "fallback port when no backend is advertised")
	flag.Parse()

	addr := discovery.Discover(context.Background(), *timeout, *port)
	fmt.Println(addr)
}
