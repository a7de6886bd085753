package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labdesk/models"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, staticToken(token))
}

func TestClient_SendsBearerToken(t *testing.T) {
	var got string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}, "tok-123")

	_, err := client.SearchCustomers(context.Background(), "asha")
	assert.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", got)
}

func TestClient_OmitsAuthorizationWhenLoggedOut(t *testing.T) {
	var hadHeader bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hadHeader = r.Header["Authorization"]
		w.Write([]byte(`[]`))
	}, "")

	_, err := client.SearchCustomers(context.Background(), "asha")
	assert.NoError(t, err)
	assert.False(t, hadHeader)
}

func TestClient_SurfacesBackendMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"Discount exceeds bill amount"}`))
	}, "tok")

	_, err := client.PreviewDiscount(context.Background(), 100, models.DiscountPercentage, 150)
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusUnprocessableEntity, reqErr.Status)
	assert.Equal(t, "Discount exceeds bill amount", reqErr.Message)
	assert.Equal(t, "Discount exceeds bill amount", ErrorMessage(err, "fallback"))
}

func TestClient_SurfacesErrorKeyVariant(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"branch_id is required"}`))
	}, "tok")

	_, err := client.ListTests(context.Background(), 1, 10, nil)
	require.Error(t, err)
	assert.Equal(t, "branch_id is required", ErrorMessage(err, "fallback"))
}

func TestClient_GenericMessageForOpaqueFailures(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>gateway exploded</html>`))
	}, "tok")

	_, err := client.SearchCustomers(context.Background(), "asha")
	require.Error(t, err)
	assert.Equal(t, "Could not search customers", ErrorMessage(err, "Could not search customers"))
}

func TestClient_MultipartCarriesFormFields(t *testing.T) {
	var name, phone string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		name = r.FormValue("name")
		phone = r.FormValue("phone")
		w.Write([]byte(`{"data":{"id":12,"name":"Asha Rao","phone":"9810000005"}}`))
	}, "tok")

	customer, err := client.CreateCustomer(context.Background(), models.CustomerInput{
		Name:  "Asha Rao",
		Phone: "9810000005",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", name)
	assert.Equal(t, "9810000005", phone)
	assert.Equal(t, 12, customer.ID)
}

func TestClient_QueryParamsReachBackend(t *testing.T) {
	var query string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Write([]byte(`{"data":[]}`))
	}, "tok")

	branch := 3
	_, err := client.ListTests(context.Background(), 2, 10, &branch)
	assert.NoError(t, err)
	assert.Contains(t, query, "page=2")
	assert.Contains(t, query, "limit=10")
	assert.Contains(t, query, "branch_id=3")
}
