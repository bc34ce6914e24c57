package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/luxeshop/storefront-api/internal/domain"
	apperrors "github.com/luxeshop/storefront-api/pkg/errors"
)

func TestResolveCost(t *testing.T) {
	tests := []struct {
		name      string
		method    domain.ShippingMethod
		cartTotal int64
		want      int64
	}{
		{
			name:      "below threshold pays flat price",
			method:    domain.ShippingMethod{Price: 250, FreeShippingThreshold: 5000},
			cartTotal: 4999,
			want:      250,
		},
		{
			name:      "at threshold ships free",
			method:    domain.ShippingMethod{Price: 250, FreeShippingThreshold: 5000},
			cartTotal: 5000,
			want:      0,
		},
		{
			name:      "above threshold ships free",
			method:    domain.ShippingMethod{Price: 250, FreeShippingThreshold: 5000},
			cartTotal: 5500,
			want:      0,
		},
		{
			name:      "zero threshold means never free",
			method:    domain.ShippingMethod{Price: 250},
			cartTotal: 1_000_000,
			want:      250,
		},
		{
			name:      "free method stays free below threshold",
			method:    domain.ShippingMethod{Price: 0, FreeShippingThreshold: 5000},
			cartTotal: 100,
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveCost(&tt.method, tt.cartTotal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveCostNilMethod(t *testing.T) {
	_, err := ResolveCost(nil, 5500)

	var verr *apperrors.ErrValidation
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "shippingMethod", verr.Field)
}

func TestResolveCostIsDeterministic(t *testing.T) {
	method := domain.ShippingMethod{Price: 250, FreeShippingThreshold: 6000}

	first, err := ResolveCost(&method, 5500)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := ResolveCost(&method, 5500)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// Worked example: two ring units at 2000 plus one chain at 1500 gives a
// cart total of 5500. A 5000 threshold makes shipping free; a 6000
// threshold charges the flat 250.
func TestResolveCostAgainstOrderTotal(t *testing.T) {
	cart := domain.Cart{}
	cart.AddLine(domain.Product{ID: "ring", Name: "Gold Ring", Price: 2000}, 2)
	cart.AddLine(domain.Product{ID: "chain", Name: "Long Chain", Price: 1500}, 1)
	require.Equal(t, int64(5500), cart.Total())

	free := domain.ShippingMethod{Price: 250, FreeShippingThreshold: 5000}
	cost, err := ResolveCost(&free, cart.Total())
	require.NoError(t, err)
	assert.Equal(t, int64(0), cost)
	assert.Equal(t, int64(5500), cart.Total()+cost)

	paid := domain.ShippingMethod{Price: 250, FreeShippingThreshold: 6000}
	cost, err = ResolveCost(&paid, cart.Total())
	require.NoError(t, err)
	assert.Equal(t, int64(250), cost)
	assert.Equal(t, int64(5750), cart.Total()+cost)
}

func TestListMethodsSortedCheapestFirst(t *testing.T) {
	docs := newFakeDocStore()
	docs.seed("shipping-methods", "standard", domain.ShippingMethod{Name: "Standard", Price: 250, FreeShippingThreshold: 5000})
	docs.seed("shipping-methods", "express", domain.ShippingMethod{Name: "Express", Price: 750})

	svc := NewShippingService(docs, zap.NewNop())
	methods, err := svc.ListMethods(context.Background())
	require.NoError(t, err)
	require.Len(t, methods, 2)
	assert.Equal(t, "Standard", methods[0].Name)
}

func TestGetMethodNotFound(t *testing.T) {
	svc := NewShippingService(newFakeDocStore(), zap.NewNop())

	_, err := svc.GetMethod(context.Background(), "missing")

	var nf *apperrors.ErrNotFound
	assert.ErrorAs(t, err, &nf)
}
