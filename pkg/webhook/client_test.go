package webhook

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Post(t *testing.T) {
	t.Run("Unsigned JSON post", func(t *testing.T) {
		var received string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Empty(t, r.Header.Get("Authorization"))
			b, _ := io.ReadAll(r.Body)
			received = string(b)
		}))
		defer srv.Close()

		body, err := Encode(map[string]string{"name": "Ana"})
		require.NoError(t, err)

		require.NoError(t, NewClient(srv.URL, "", srv.Client()).Post(context.Background(), body))
		assert.JSONEq(t, `{"name":"Ana"}`, received)
	})

	t.Run("Signed post carries a verifiable token", func(t *testing.T) {
		secret := "s3cret"
		var auth string
		var raw []byte
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			raw, _ = io.ReadAll(r.Body)
		}))
		defer srv.Close()

		body, err := Encode(map[string]int{"n": 1})
		require.NoError(t, err)
		require.NoError(t, NewClient(srv.URL, secret, srv.Client()).Post(context.Background(), body))

		require.True(t, strings.HasPrefix(auth, "Bearer "))
		claims := jwt.MapClaims{}
		_, err = jwt.ParseWithClaims(strings.TrimPrefix(auth, "Bearer "), claims, func(*jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		require.NoError(t, err)

		sum := sha256.Sum256(raw)
		assert.Equal(t, hex.EncodeToString(sum[:]), claims["body_sha256"])
	})

	t.Run("Non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		err := NewClient(srv.URL, "", srv.Client()).Post(context.Background(), []byte(`{}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}

func TestEncode_Unmarshalable(t *testing.T) {
	_, err := Encode(map[string]interface{}{"bad": make(chan int)})
	assert.Error(t, err)
}
