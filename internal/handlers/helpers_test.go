package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Lixing-Zhang/storefront-api/internal/auth"
	"github.com/Lixing-Zhang/storefront-api/internal/config"
	"github.com/Lixing-Zhang/storefront-api/internal/repository"
	"github.com/Lixing-Zhang/storefront-api/internal/repository/repotest"
	"github.com/Lixing-Zhang/storefront-api/internal/seed"
	"github.com/Lixing-Zhang/storefront-api/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	handler http.Handler
	store   *repository.MemoryStore
	faulty  *repotest.FaultyStore // wraps store; the services read through it
	tokens  *auth.TokenManager
}

// newTestServer assembles the full router over a seeded memory store
func newTestServer(t *testing.T, debug bool) *testServer {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := repository.NewMemoryStore()
	hasher := auth.NewPasswordHasherWithCost(bcrypt.MinCost)
	_, err := seed.Apply(context.Background(), store, hasher)
	require.NoError(t, err)
	faulty := repotest.NewFaultyStore(store)

	tokens := auth.NewTokenManager(auth.TokenConfig{SecretKey: "test-secret", TTL: time.Hour, Issuer: "storefront-test"})
	pricer := service.NewPricer(config.PricingConfig{
		ShippingCost: decimal.RequireFromString("10.00"),
		TaxRate:      decimal.RequireFromString("0.10"),
	})

	rs := Responder{Log: log, Debug: debug}
	handler := NewRouter(RouterConfig{
		Products:       NewProductHandler(service.NewProductService(faulty, faulty, log), rs),
		Orders:         NewOrderHandler(service.NewOrderService(faulty, faulty, pricer, log), rs),
		Stats:          NewStatsHandler(service.NewStatsService(faulty), rs),
		Auth:           NewAuthHandler(service.NewAuthService(faulty, hasher, tokens, log), rs),
		Health:         NewHealthHandler(faulty, rs),
		Tokens:         tokens,
		Responder:      rs,
		AllowedOrigins: []string{"http://localhost:5173"},
		RequestTimeout: 5 * time.Second,
	})

	return &testServer{handler: handler, store: store, faulty: faulty, tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, target string, body any, header ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

// productID looks up a seeded product by name
func (s *testServer) productID(t *testing.T, name string) string {
	t.Helper()
	page, err := s.store.FindPage(context.Background(), repository.ProductQuery{Search: name, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1, "seeded product %q", name)
	return page[0].ID
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v), w.Body.String())
	return v
}
