package domain

// OrderStatus represents the lifecycle status of an order. The string
// values are the durable contract: they are persisted, displayed and
// filtered on by users, and must not be renamed.
type OrderStatus string

const (
	OrderStatusPending              OrderStatus = "pending"
	OrderStatusProcessing           OrderStatus = "processing"
	OrderStatusShipped              OrderStatus = "shipped"
	OrderStatusDelivered            OrderStatus = "delivered"
	OrderStatusCancelled            OrderStatus = "cancelled"
	OrderStatusReturnRequested      OrderStatus = "return_requested"
	OrderStatusReplacementRequested OrderStatus = "replacement_requested"
	OrderStatusReturned             OrderStatus = "returned"
	OrderStatusReplaced             OrderStatus = "replaced"
	OrderStatusRejected             OrderStatus = "rejected"
)

// IsValid checks if the order status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
		OrderStatusReturnRequested,
		OrderStatusReplacementRequested,
		OrderStatusReturned,
		OrderStatusReplaced,
		OrderStatusRejected:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a status transition is valid. Transitions are
// one-directional; no transition returns to an earlier non-terminal state.
func (s OrderStatus) CanTransitionTo(newStatus OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return newStatus == OrderStatusProcessing ||
			newStatus == OrderStatusCancelled
	case OrderStatusProcessing:
		return newStatus == OrderStatusShipped ||
			newStatus == OrderStatusCancelled
	case OrderStatusShipped:
		return newStatus == OrderStatusDelivered
	case OrderStatusDelivered:
		return newStatus == OrderStatusReturnRequested ||
			newStatus == OrderStatusReplacementRequested
	case OrderStatusReturnRequested:
		return newStatus == OrderStatusReturned ||
			newStatus == OrderStatusRejected
	case OrderStatusReplacementRequested:
		return newStatus == OrderStatusReplaced ||
			newStatus == OrderStatusRejected
	case OrderStatusCancelled, OrderStatusReturned, OrderStatusReplaced, OrderStatusRejected:
		return false // Terminal states
	default:
		return false
	}
}

// HasPendingReturn reports whether a return or replacement request is
// currently open on an order in this status.
func (s OrderStatus) HasPendingReturn() bool {
	return s == OrderStatusReturnRequested || s == OrderStatusReplacementRequested
}

// ReturnType distinguishes a refund request from a replacement request.
type ReturnType string

const (
	ReturnTypeRefund      ReturnType = "refund"
	ReturnTypeReplacement ReturnType = "replacement"
)

// IsValid checks if the return type is a known value.
func (t ReturnType) IsValid() bool {
	return t == ReturnTypeRefund || t == ReturnTypeReplacement
}

// RequestedStatus returns the order status a request of this type moves
// a delivered order into.
func (t ReturnType) RequestedStatus() OrderStatus {
	if t == ReturnTypeRefund {
		return OrderStatusReturnRequested
	}
	return OrderStatusReplacementRequested
}

// ResolvedStatus returns the terminal status an approved request of this
// type resolves to.
func (t ReturnType) ResolvedStatus() OrderStatus {
	if t == ReturnTypeRefund {
		return OrderStatusReturned
	}
	return OrderStatusReplaced
}

// PaymentMethod represents how the customer chose to pay.
type PaymentMethod string

const (
	PaymentMethodCreditCard     PaymentMethod = "credit_card"
	PaymentMethodPayPal         PaymentMethod = "paypal"
	PaymentMethodCashOnDelivery PaymentMethod = "cod"
)

// IsValid checks if the payment method is a known value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodPayPal, PaymentMethodCashOnDelivery:
		return true
	default:
		return false
	}
}
