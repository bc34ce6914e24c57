package domain

import "time"

// Product represents a catalog product as served by the data service.
// Read-only from this subsystem's perspective; prices are integer
// currency units.
type Product struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Price      int64    `json:"price"`
	Stock      int      `json:"stock"`
	Material   string   `json:"material,omitempty"`
	Sizes      []string `json:"sizes,omitempty"`
	IsFeatured bool     `json:"isFeatured,omitempty"`
}

// Category represents a catalog category.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// User represents an authenticated customer or admin.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == "admin"
}

// ShippingMethod is a named fulfillment option with a flat price and an
// optional free-shipping threshold. Configured externally, read-only here.
type ShippingMethod struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Duration string `json:"duration,omitempty"`
	// FreeShippingThreshold of 0 means the method never ships free.
	FreeShippingThreshold int64 `json:"freeShippingThreshold,omitempty"`
}

// Address is a structured shipping address. All fields are required on
// order submission.
type Address struct {
	FullName     string `json:"fullName"`
	AddressLine1 string `json:"addressLine1"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
}

// MissingField returns the name of the first unset required field, or ""
// when the address is complete.
func (a Address) MissingField() string {
	switch {
	case a.FullName == "":
		return "fullName"
	case a.AddressLine1 == "":
		return "addressLine1"
	case a.City == "":
		return "city"
	case a.State == "":
		return "state"
	case a.PostalCode == "":
		return "postalCode"
	case a.Country == "":
		return "country"
	case a.Phone == "":
		return "phone"
	default:
		return ""
	}
}

// OrderItem is one line of a placed order. Price is the unit price
// snapshotted at purchase time; later product price edits never change it.
type OrderItem struct {
	Product  Ref[Product] `json:"product"`
	Quantity int          `json:"quantity"`
	Price    int64        `json:"price"`
}

// Subtotal returns quantity times the snapshotted unit price.
func (i OrderItem) Subtotal() int64 {
	return int64(i.Quantity) * i.Price
}

// ReturnRequest is the customer-initiated return/replacement sub-workflow
// embedded in an order. Created at most once per order.
type ReturnRequest struct {
	Type         ReturnType `json:"type"`
	Reason       string     `json:"reason"`
	Images       []string   `json:"images,omitempty"`
	RequestDate  time.Time  `json:"requestDate"`
	AdminComment string     `json:"adminComment,omitempty"`
}

// Order is the immutable record of a completed checkout. Only Status,
// ReturnDetails and TransactionID are mutated after creation, and only by
// the lifecycle and payment services. Field names are the durable
// persistence contract.
type Order struct {
	ID              string         `json:"id,omitempty"`
	User            Ref[User]      `json:"user"`
	Items           []OrderItem    `json:"items"`
	Total           int64          `json:"total"`
	ShippingCost    int64          `json:"shippingCost"`
	ShippingMethod  string         `json:"shippingMethod"`
	Status          OrderStatus    `json:"status"`
	ShippingAddress Address        `json:"shippingAddress"`
	PaymentMethod   PaymentMethod  `json:"paymentMethod"`
	ReturnDetails   *ReturnRequest `json:"returnDetails,omitempty"`
	TransactionID   string         `json:"transactionId,omitempty"`
	CreatedAt       time.Time      `json:"createdAt,omitempty"`
	UpdatedAt       time.Time      `json:"updatedAt,omitempty"`
}

// ItemsSubtotal returns the sum of all item subtotals, excluding shipping.
func (o Order) ItemsSubtotal() int64 {
	var sum int64
	for _, item := range o.Items {
		sum += item.Subtotal()
	}
	return sum
}

// IdempotencyKey records a processed order submission so a client retry
// with the same key returns the original order instead of creating a
// duplicate.
type IdempotencyKey struct {
	Key         string
	UserID      string
	OrderID     string
	RequestHash string
	CreatedAt   time.Time
}

// Enquiry is a contact-form submission persisted through the generic
// document API.
type Enquiry struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// Testimonial is a customer quote shown on the storefront.
type Testimonial struct {
	ID     string `json:"id,omitempty"`
	Author string `json:"author"`
	Quote  string `json:"quote"`
	Rating int    `json:"rating,omitempty"`
}
