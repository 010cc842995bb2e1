package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/GeraldMcToaster/EcoWars/internal/constants"
)

// Container health probe. Hits the open-matches listing on the local server
// and exits non-zero when the server is unreachable or failing.
func main() {
	addr := os.Getenv(constants.EnvAddr)
	if addr == "" {
		addr = ":8080"
	}
	if strings.HasPrefix(addr, ":") {
		addr = "127.0.0.1" + addr
	}

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + addr + constants.RouteAPIPrefix + constants.RouteOpenMatches)
	if err != nil {
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 500 {
		os.Exit(1)
	}
	os.Exit(0)
}
