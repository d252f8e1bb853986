package discovery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`{"order":[["0",60]],"F0":[1,["fwdelb02-1964376362.us-east-1.elb.amazonaws.com","174.36.242.26"],["174.36.242.34"]]}`))
	}))
	defer srv.Close()

	addr, err := NewResolver(srv.URL, srv.Client()).Resolve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "fwdelb02-1964376362.us-east-1.elb.amazonaws.com", addr.IP)
	assert.Equal(t, ServicePort, addr.Port)
	assert.Equal(t, "fwdelb02-1964376362.us-east-1.elb.amazonaws.com:10000", addr.String())
}

func TestResolveErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "http error", status: http.StatusBadGateway, body: `{}`},
		{name: "not json", status: http.StatusOK, body: `<html>`},
		{name: "no groups", status: http.StatusOK, body: `{"F0":[1]}`},
		{name: "group not array", status: http.StatusOK, body: `{"F0":[1,"x"]}`},
		{name: "empty group", status: http.StatusOK, body: `{"F0":[1,[]]}`},
		{name: "ip not string", status: http.StatusOK, body: `{"F0":[1,[42]]}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewResolver(srv.URL, nil).Resolve(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestAddressStringIPv6(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[::1]:10000", Address{IP: "::1", Port: ServicePort}.String())
}
