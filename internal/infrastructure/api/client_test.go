package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/erp/console/internal/domain/identity"
	"github.com/erp/console/internal/domain/partner"
	"github.com/erp/console/internal/domain/shared"
	"github.com/erp/console/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, nil, nil, Options{})
}

func TestClient_LoginSuccess(t *testing.T) {
	var payload identity.Credentials
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/Auth/login", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
	}))

	err := client.Login(context.Background(), identity.Credentials{Email: "a@b.com", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, "a@b.com", payload.Email)
	assert.Equal(t, "x", payload.Password)
}

func TestClient_LoginRejectedMapsToAuthFailure(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusBadRequest, http.StatusInternalServerError} {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		}))

		err := client.Login(context.Background(), identity.Credentials{Email: "a@b.com", Password: "x"})
		assert.ErrorIs(t, err, shared.ErrAuthenticationFail, "status %d", status)
	}
}

func TestClient_ListCustomers(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/customers", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]partner.Customer{
			{ID: 1, Identification: "123", Name: "Ana"},
			{ID: 2, Identification: "456", Name: "Luis"},
		})
	}))

	customers, err := client.ListCustomers(context.Background())

	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Ana", customers[0].Name)
}

func TestClient_CreateAndUpdateCustomer(t *testing.T) {
	var method, path string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
	}))

	form := partner.CustomerForm{Identification: "123", Name: "Ana"}
	require.NoError(t, client.CreateCustomer(context.Background(), form))
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/customers", path)

	form.ID = 9
	require.NoError(t, client.UpdateCustomer(context.Background(), form))
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/customers/9", path)
}

func TestClient_CreateSaleSerializesLineItems(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/sales", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	}))

	sale := trade.NewSale()
	sale.SetCustomer(4)
	require.NoError(t, sale.SetLineQuantity(0, "2"))
	require.NoError(t, sale.SetLineValue(0, "10"))

	require.NoError(t, client.CreateSale(context.Background(), sale))

	details, ok := body["saleDetails"].([]any)
	require.True(t, ok)
	assert.Len(t, details, 1)
	assert.Equal(t, "20", body["total"])
}

func TestClient_ListSalesDecodesTotals(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"date":"2026-02-01T00:00:00Z","customerId":1,"customer":"Ana","total":35,"note":"","saleDetails":[]}]`))
	}))

	sales, err := client.ListSales(context.Background())

	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.True(t, sales[0].Total.Equal(decimal.NewFromInt(35)))
}

func TestClient_StatusError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.ListProducts(context.Background())

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, statusErr.Error(), "/products")
}

func TestClient_DecodeFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{broken"))
	}))

	_, err := client.ListUsers(context.Background())
	assert.Error(t, err)
}
