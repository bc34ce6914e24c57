package service

import (
	"context"

	"github.com/luxeshop/storefront-api/internal/cms"
	"github.com/luxeshop/storefront-api/internal/domain"
)

// DocumentStore is the generic persistence surface of the external data
// service. Orders, shipping methods, enquiries and testimonials all live
// behind it.
type DocumentStore interface {
	CreateDocument(ctx context.Context, collection string, doc, out interface{}) error
	UpdateDocument(ctx context.Context, collection, id string, patch, out interface{}) error
	GetDocument(ctx context.Context, collection, id string, out interface{}) error
	ListDocuments(ctx context.Context, collection string, opts cms.ListOptions, out interface{}) error
}

// Catalog is the read-only product/category accessor.
type Catalog interface {
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	ListProducts(ctx context.Context, opts cms.ListOptions) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// MediaUploader uploads files to the external media collection.
type MediaUploader interface {
	UploadFile(ctx context.Context, data []byte, filename, mimeType string) (string, error)
}

// CartStore persists session carts.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (domain.Cart, error)
	Save(ctx context.Context, sessionID string, c domain.Cart) error
	Clear(ctx context.Context, sessionID string) error
}
