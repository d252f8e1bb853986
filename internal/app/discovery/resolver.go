/*
Package discovery looks up the address of the chat service.

The lookup endpoint returns a JSON document whose "F0" array lists server groups after a
leading header element; the first address of the first group is dialled on the fixed
service port.
*/
package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"roombot/internal/pkg/logx"
)

const (
	// ServicePort is the chat service port; the lookup only supplies the host.
	ServicePort = 10000

	// requestTimeout bounds one lookup.
	requestTimeout = 10 * time.Second

	// maxBodySize caps the lookup response.
	maxBodySize = 1 << 20
)

// Address is a resolved chat service endpoint.
type Address struct {
	IP   string
	Port int
}

// String returns the address in host:port form.
func (a Address) String() string {
	return net.JoinHostPort(a.IP, strconv.Itoa(a.Port))
}

// Resolver fetches the service address from the lookup endpoint.
type Resolver struct {
	url    string
	client *http.Client
}

// NewResolver creates a Resolver for url. A nil client means a client with a 10s timeout.
func NewResolver(url string, client *http.Client) *Resolver {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	return &Resolver{url: url, client: client}
}

// lookupDocument is the part of the lookup response we read.
type lookupDocument struct {
	F0 []json.RawMessage `json:"F0"`
}

// Resolve performs the lookup.
func (r *Resolver) Resolve(ctx context.Context) (Address, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return Address{}, fmt.Errorf("failed to build discovery request: %w", err)
	}

	res, err := r.client.Do(req)
	if err != nil {
		return Address{}, fmt.Errorf("discovery request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return Address{}, fmt.Errorf("discovery endpoint returned HTTP %d", res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return Address{}, fmt.Errorf("failed to read discovery response: %w", err)
	}

	addr, err := parseDocument(body)
	if err != nil {
		return Address{}, err
	}

	logx.Info("Resolved chat service address.", "address", addr.String())
	return addr, nil
}

func parseDocument(body []byte) (Address, error) {
	var doc lookupDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return Address{}, fmt.Errorf("invalid discovery response: %w", err)
	}

	if len(doc.F0) < 2 {
		return Address{}, fmt.Errorf("discovery response lists no server groups")
	}

	var group []json.RawMessage
	if err := json.Unmarshal(doc.F0[1], &group); err != nil || len(group) == 0 {
		return Address{}, fmt.Errorf("discovery response has a malformed server group")
	}

	var ip string
	if err := json.Unmarshal(group[0], &ip); err != nil || ip == "" {
		return Address{}, fmt.Errorf("discovery response has no server address")
	}

	return Address{IP: ip, Port: ServicePort}, nil
}
