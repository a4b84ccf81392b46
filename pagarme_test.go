package pagarme_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	pagarme "github.com/cloudson/pagarme-go"
	"github.com/cloudson/pagarme-go/card"
	"github.com/cloudson/pagarme-go/customer"
	"github.com/cloudson/pagarme-go/plan"
	"github.com/cloudson/pagarme-go/postback"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := pagarme.New(pagarme.Config{}, nil)
	require.ErrorIs(t, err, pagarme.ErrMissingAPIKey)
}

func TestCreateCardSubscriptionOverHTTP(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/1/subscriptions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"object":"subscription","id":184622,"status":"paid","plan":{"id":123}}`))
	}))
	defer srv.Close()

	client, err := pagarme.New(pagarme.Config{
		BaseURL:    srv.URL + "/1",
		APIKey:     "ak_test_key",
		RetryDelay: time.Millisecond,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)

	cust := customer.Customer{
		Name:           "John Doe",
		Email:          "john@test.com",
		DocumentNumber: "576981209",
		BornAt:         "12031990",
		Gender:         "m",
		Address: customer.Address{
			Street:       "Rua teste",
			StreetNumber: "123",
			Neighborhood: "Centro",
			Zipcode:      "01034020",
		},
		Phone: customer.Phone{DDD: "11", Number: "44445555"},
	}

	sub, err := client.Subscription().CreateCardSubscription(
		context.Background(),
		plan.Plan{ID: 123},
		card.ByID(123456),
		cust,
		nil,
		map[string]string{"foo": "bar", "a": "b"},
	)
	require.NoError(t, err)
	require.Equal(t, 184622, sub.ID)

	expected := `{
		"api_key": "ak_test_key",
		"plan_id": 123,
		"payment_method": "credit_card",
		"metadata": {"foo": "bar", "a": "b"},
		"customer": {
			"name": "John Doe",
			"email": "john@test.com",
			"document_number": "576981209",
			"address": {"street": "Rua teste", "street_number": "123", "neighborhood": "Centro", "zipcode": "01034020"},
			"phone": {"ddd": "11", "number": "44445555"},
			"born_at": "12031990",
			"gender": "m"
		},
		"card_id": 123456
	}`
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	require.JSONEq(t, expected, string(raw))
}

func TestPostbackThroughClient(t *testing.T) {
	client, err := pagarme.New(pagarme.Config{APIKey: "ak_test_key"}, nil)
	require.NoError(t, err)

	var got postback.Postback
	router := mux.NewRouter()
	client.Postback(func(_ context.Context, pb postback.Postback) error {
		got = pb
		return nil
	}).Register(router, "/postback")

	body := "id=1&object=subscription&current_status=paid"
	req := httptest.NewRequest(http.MethodPost, "/postback", strings.NewReader(body))
	req.Header.Set(postback.SignatureHeader, postback.Sign([]byte(body), "ak_test_key"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "paid", got.CurrentStatus)
}

func TestAPIErrorIsVisibleToCallers(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"type":"invalid_parameter","parameter_name":"plan_id","message":"Plano não encontrado"}]}`))
	}))
	defer srv.Close()

	client, err := pagarme.New(pagarme.Config{
		BaseURL:    srv.URL,
		APIKey:     "ak_test_key",
		MaxRetries: pagarme.UseDefaultRetries,
	}, nil)
	require.NoError(t, err)

	_, err = client.Subscription().CreateCardSubscription(
		context.Background(), plan.Plan{ID: 999}, card.ByID(1), customer.Customer{}, nil, nil,
	)

	var apiErr *pagarme.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, []pagarme.ErrorDetail{{
		Type:          "invalid_parameter",
		ParameterName: "plan_id",
		Message:       "Plano não encontrado",
	}}, apiErr.Errors)

	same, ok := pagarme.IsAPIError(err)
	require.True(t, ok)
	require.Same(t, apiErr, same)
	require.Equal(t, 1, calls)
}

func TestCardHashUsesEncryptionKey(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	publicKey := string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transactions/card_hash_key", r.URL.Path)
		require.Equal(t, "ek_test_key", r.URL.Query().Get("encryption_key"))
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 42, "public_key": publicKey})
	}))
	defer srv.Close()

	client, err := pagarme.New(pagarme.Config{
		BaseURL:       srv.URL,
		APIKey:        "ak_test_key",
		EncryptionKey: "ek_test_key",
	}, nil)
	require.NoError(t, err)

	c, err := client.CardHash(context.Background(), "4242424242424242", "John Doe", "1225", "123")
	require.NoError(t, err)

	hash, ok := c.Hash()
	require.True(t, ok)
	require.True(t, strings.HasPrefix(hash, "42_"))
}

func TestCardHashWithoutEncryptionKey(t *testing.T) {
	client, err := pagarme.New(pagarme.Config{APIKey: "ak_test_key"}, nil)
	require.NoError(t, err)

	_, err = client.CardHash(context.Background(), "4242424242424242", "John Doe", "1225", "123")
	require.ErrorIs(t, err, card.ErrMissingEncryptionKey)
}
