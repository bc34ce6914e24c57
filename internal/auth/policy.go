package auth

import "github.com/luxeshop/storefront-api/internal/domain"

// Authorization predicates, kept as plain functions so they can be tested
// without the HTTP layer. The data service enforces its own access rules
// too; these guard the engine's operations.

// CanReadOrder reports whether the actor may view an order: admins see
// everything, customers only their own orders.
func CanReadOrder(actor domain.User, order domain.Order) bool {
	if actor.IsAdmin() {
		return true
	}
	return actor.ID != "" && actor.ID == order.User.ID()
}

// CanUpdateOrder reports whether the actor may mutate an order's
// lifecycle. Customers may act only on their own orders (the lifecycle
// service further restricts which transitions they can drive).
func CanUpdateOrder(actor domain.User, order domain.Order) bool {
	if actor.IsAdmin() {
		return true
	}
	return actor.ID != "" && actor.ID == order.User.ID()
}

// CanManageOrders reports whether the actor may perform administrative
// transitions (ship, deliver, cancel, resolve returns).
func CanManageOrders(actor domain.User) bool {
	return actor.IsAdmin()
}
