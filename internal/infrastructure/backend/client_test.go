package backend_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customer-portal/internal/domain"
	"github.com/jhoicas/customer-portal/internal/domain/entity"
	"github.com/jhoicas/customer-portal/internal/domain/repository"
	"github.com/jhoicas/customer-portal/internal/infrastructure/backend"
)

func newServer(t *testing.T, h http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return backend.NewClient(srv.URL+"/", 5*time.Second, nil)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestLogin_DevuelveToken(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body["email"])
		assert.Equal(t, "pw", body["password"])
		writeJSON(w, http.StatusOK, map[string]string{"access_token": "tok"})
	})

	tok, err := c.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid credentials"})
	})

	_, err := c.Login(context.Background(), "a@b.com", "mal")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid credentials")
	assert.True(t, backend.IsStatus(err, http.StatusUnauthorized))
}

func TestFind_EnviaBearerYEscapaID(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "/find/ARC 7", r.URL.Path)
		writeJSON(w, http.StatusOK, entity.Customer{CustomerID: "ARC 7", Fullname: "Asha"})
	})

	ctx := backend.WithToken(context.Background(), "tok-1")
	cu, err := c.Find(ctx, "ARC 7")
	require.NoError(t, err)
	assert.Equal(t, "Asha", cu.Fullname)
}

func TestFind_NoEncontrado(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Customer not found"})
	})

	_, err := c.Find(context.Background(), "X")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_OpcionalesComoNull(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))

		assert.Contains(t, body, "mobile")
		assert.Nil(t, body["mobile"])
		assert.Nil(t, body["note"])
		assert.Equal(t, "x@y.com", body["email"])
		writeJSON(w, http.StatusCreated, entity.Customer{CustomerID: "ARC100", Fullname: "Asha"})
	})

	cu, err := c.Create(context.Background(), &entity.Customer{
		Fullname: "Asha", Address: "MG Road", RegDate: "2025-01-02", Email: "x@y.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "ARC100", cu.CustomerID)
}

func TestUpdate_ErrorDeValidacion(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/customer/ARC1", r.URL.Path)
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"detail": []map[string]any{{"loc": []string{"body", "mobile"}, "msg": "invalid mobile"}},
		})
	})

	_, err := c.Update(context.Background(), "ARC1", map[string]any{"mobile": "1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "invalid mobile")
}

func TestFilter_SoloCriteriosNoVacios(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "HOLD", q.Get("status"))
		assert.Equal(t, "2025-01-01", q.Get("date_from"))
		assert.False(t, q.Has("date_to"))
		assert.False(t, q.Has("assigned_to_name"))
		_, _ = w.Write([]byte("null"))
	})

	list, err := c.Filter(context.Background(), repository.CustomerFilter{Status: "HOLD", DateFrom: "2025-01-01"})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestSearch_Lista(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customer/9876543210", r.URL.Path)
		writeJSON(w, http.StatusOK, []entity.Customer{{CustomerID: "A"}, {CustomerID: "B"}})
	})

	list, err := c.Search(context.Background(), "9876543210")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCountAndGraph(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"count":{"total":5,"active":3,"hold":1,"closed":1},"graph":{"registrations":[{"label":"2025-01","value":5}]}}`))
	})

	d, err := c.CountAndGraph(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, d.Count.Total)
	assert.Equal(t, 5, d.Graph["registrations"][0].Value)
}

func TestBackendCaido(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Me(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)

	unreachable := backend.NewClient("http://127.0.0.1:1", time.Second, nil)
	_, err = unreachable.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}
