package paymentgw_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"farmmarket/internal/adapters/out/paymentgw"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/ports"
	"farmmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chargeRequest(t *testing.T) ports.ChargeRequest {
	t.Helper()
	amount, err := kernel.NewMoney(42.50)
	require.NoError(t, err)
	return ports.ChargeRequest{
		OrderID:     kernel.NewUUID(),
		OrderNumber: "FM-20260101120000-ABCDEF",
		Amount:      amount,
		Method:      order.MethodCard,
		Details:     map[string]string{"cardToken": "tok_abc"},
	}
}

func TestClient_Charge_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/charges", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "FM-20260101120000-ABCDEF", body["orderNumber"])
		assert.InEpsilon(t, 42.50, body["amount"], 1e-9)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"paymentId":"pay_123","status":"paid"}`))
	}))
	defer server.Close()

	client := paymentgw.NewClient(server.URL, "test-key", 0)
	result, err := client.Charge(t.Context(), chargeRequest(t))
	require.NoError(t, err)
	assert.Equal(t, "pay_123", result.PaymentID)
	assert.Equal(t, order.PaymentPaid, result.Status)
}

func TestClient_Charge_GatewayError_UpstreamUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := paymentgw.NewClient(server.URL, "test-key", 0)
	_, err := client.Charge(t.Context(), chargeRequest(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
}

func TestClient_Charge_Timeout_UpstreamUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"paymentId":"pay_123","status":"paid"}`))
	}))
	defer server.Close()

	client := paymentgw.NewClient(server.URL, "test-key", 50*time.Millisecond)
	_, err := client.Charge(t.Context(), chargeRequest(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
}

func TestClient_Charge_BadRequest_InvalidValue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := paymentgw.NewClient(server.URL, "test-key", 0)
	_, err := client.Charge(t.Context(), chargeRequest(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestClient_PaymentStatus_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/charges/pay_123", r.URL.Path)
		_, _ = w.Write([]byte(`{"paymentId":"pay_123","status":"failed"}`))
	}))
	defer server.Close()

	client := paymentgw.NewClient(server.URL, "test-key", 0)
	status, err := client.PaymentStatus(t.Context(), "pay_123")
	require.NoError(t, err)
	assert.Equal(t, order.PaymentFailed, status)
}

func TestClient_PaymentStatus_UnknownPayment_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := paymentgw.NewClient(server.URL, "test-key", 0)
	_, err := client.PaymentStatus(t.Context(), "pay_missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestClient_PaymentStatus_EmptyID_Required(t *testing.T) {
	client := paymentgw.NewClient("http://localhost:0", "test-key", 0)
	_, err := client.PaymentStatus(t.Context(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
