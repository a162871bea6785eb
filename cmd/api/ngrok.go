package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

const (
	ngrokAttempts = 10
	ngrokInterval = 3 * time.Second
)

// detectNgrokURL queries the ngrok local API and returns the first HTTPS tunnel URL.
// ngrok may still be starting, so the query is retried.
func detectNgrokURL(ctx context.Context, apiBase string) (string, error) {
	return detectNgrokURLWith(ctx, apiBase, ngrokAttempts, ngrokInterval)
}

func detectNgrokURLWith(ctx context.Context, apiBase string, attempts int, interval time.Duration) (string, error) {
	url := apiBase + "/api/tunnels"
	client := &http.Client{Timeout: 5 * time.Second}

	for attempt := 1; attempt <= attempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return "", fmt.Errorf("failed to create ngrok API request: %w", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			if attempt < attempts {
				select {
				case <-ctx.Done():
					return "", ctx.Err()
				case <-time.After(interval):
					continue
				}
			}
			return "", fmt.Errorf("ngrok API not reachable after %d attempts: %w", attempts, err)
		}

		var tunnels ngrokTunnelsResponse
		err = json.NewDecoder(resp.Body).Decode(&tunnels)
		resp.Body.Close()
		if err != nil {
			return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
		}

		// Prefer HTTPS tunnels
		for _, t := range tunnels.Tunnels {
			if t.Proto == "https" {
				return t.PublicURL, nil
			}
		}

		// Fallback: any tunnel
		if len(tunnels.Tunnels) > 0 {
			return tunnels.Tunnels[0].PublicURL, nil
		}

		// no tunnels yet
		if attempt < attempts {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(interval):
			}
		}
	}

	return "", fmt.Errorf("ngrok has no active tunnels after %d attempts", attempts)
}
