package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/luxeshop/storefront-api/internal/config"
	"github.com/luxeshop/storefront-api/internal/domain"
	apperrors "github.com/luxeshop/storefront-api/pkg/errors"
)

const testKeySecret = "test-key-secret"

func newPaymentFixture() (*fakeDocStore, *paymentService) {
	docs := newFakeDocStore()
	cfg := config.PaymentConfig{KeyID: "key_test", KeySecret: testKeySecret}
	return docs, NewPaymentService(docs, cfg, zap.NewNop())
}

func signPayment(providerOrderID, providerPaymentID string) string {
	mac := hmac.New(sha256.New, []byte(testKeySecret))
	mac.Write([]byte(providerOrderID + "|" + providerPaymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestCreateProviderOrder(t *testing.T) {
	docs, svc := newPaymentFixture()
	docs.seed("orders", "o-1", domain.Order{Status: domain.OrderStatusPending, Total: 5750})

	po, err := svc.CreateProviderOrder(context.Background(), "o-1")
	require.NoError(t, err)

	assert.Equal(t, "o-1", po.OrderID)
	assert.Equal(t, int64(575000), po.Amount, "amount is quoted in minor units")
	assert.Equal(t, "INR", po.Currency)
	assert.Equal(t, "receipt_o-1", po.Receipt)
}

func TestCreateProviderOrderUnknownOrder(t *testing.T) {
	_, svc := newPaymentFixture()

	_, err := svc.CreateProviderOrder(context.Background(), "missing")

	var nf *apperrors.ErrNotFound
	assert.ErrorAs(t, err, &nf)
}

func TestVerifyValidSignature(t *testing.T) {
	docs, svc := newPaymentFixture()
	docs.seed("orders", "o-1", domain.Order{Status: domain.OrderStatusPending, Total: 5500})

	ok, err := svc.Verify(context.Background(), "o-1", "prov_1", "pay_1", signPayment("prov_1", "pay_1"))
	require.NoError(t, err)
	assert.True(t, ok)

	var order domain.Order
	require.NoError(t, docs.GetDocument(context.Background(), "orders", "o-1", &order))
	assert.Equal(t, domain.OrderStatusProcessing, order.Status)
	assert.Equal(t, "pay_1", order.TransactionID)
}

func TestVerifyTamperedSignatureNeverMutates(t *testing.T) {
	docs, svc := newPaymentFixture()
	docs.seed("orders", "o-1", domain.Order{Status: domain.OrderStatusPending, Total: 5500})

	// However often a bad callback is replayed, the order stays pending.
	for i := 0; i < 3; i++ {
		ok, err := svc.Verify(context.Background(), "o-1", "prov_1", "pay_1", "deadbeef")
		require.NoError(t, err)
		assert.False(t, ok)
	}

	var order domain.Order
	require.NoError(t, docs.GetDocument(context.Background(), "orders", "o-1", &order))
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Empty(t, order.TransactionID)
}

func TestVerifySignatureForOtherPayment(t *testing.T) {
	docs, svc := newPaymentFixture()
	docs.seed("orders", "o-1", domain.Order{Status: domain.OrderStatusPending, Total: 5500})

	// A signature valid for different ids must not verify this callback.
	ok, err := svc.Verify(context.Background(), "o-1", "prov_1", "pay_1", signPayment("prov_2", "pay_2"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyUnknownOrder(t *testing.T) {
	_, svc := newPaymentFixture()

	_, err := svc.Verify(context.Background(), "missing", "prov_1", "pay_1", signPayment("prov_1", "pay_1"))

	var nf *apperrors.ErrNotFound
	assert.ErrorAs(t, err, &nf)
}

func TestVerifyValidSignatureOnNonPendingOrder(t *testing.T) {
	docs, svc := newPaymentFixture()
	docs.seed("orders", "o-1", domain.Order{Status: domain.OrderStatusShipped, Total: 5500})

	ok, err := svc.Verify(context.Background(), "o-1", "prov_1", "pay_1", signPayment("prov_1", "pay_1"))

	var ist *apperrors.ErrInvalidStateTransition
	require.ErrorAs(t, err, &ist)
	assert.False(t, ok)
	assert.Equal(t, domain.OrderStatusShipped, ist.From)
}
