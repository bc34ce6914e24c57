package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luxeshop/storefront-api/internal/domain"
)

func TestCanReadOrder(t *testing.T) {
	order := domain.Order{User: domain.IDRef[domain.User]("u-1")}

	assert.True(t, CanReadOrder(domain.User{ID: "u-1"}, order))
	assert.False(t, CanReadOrder(domain.User{ID: "u-2"}, order))
	assert.True(t, CanReadOrder(domain.User{ID: "admin", Role: "admin"}, order))
}

func TestCanReadOrderAnonymousNeverMatches(t *testing.T) {
	// An order with an empty owner must not leak to an anonymous actor.
	order := domain.Order{}
	assert.False(t, CanReadOrder(domain.User{}, order))
}

func TestCanUpdateOrder(t *testing.T) {
	order := domain.Order{User: domain.IDRef[domain.User]("u-1")}

	assert.True(t, CanUpdateOrder(domain.User{ID: "u-1"}, order))
	assert.False(t, CanUpdateOrder(domain.User{ID: "u-2"}, order))
	assert.True(t, CanUpdateOrder(domain.User{ID: "ops", Role: "admin"}, order))
	assert.False(t, CanUpdateOrder(domain.User{}, order))
}

func TestCanManageOrders(t *testing.T) {
	assert.True(t, CanManageOrders(domain.User{ID: "ops", Role: "admin"}))
	assert.False(t, CanManageOrders(domain.User{ID: "u-1"}))
	assert.False(t, CanManageOrders(domain.User{}))
}
