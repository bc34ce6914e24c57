package cms

import (
	"context"
	"net/http"

	"github.com/luxeshop/storefront-api/internal/domain"
	apperrors "github.com/luxeshop/storefront-api/pkg/errors"
)

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	var product domain.Product
	err := c.do(ctx, http.MethodGet, "/api/products/"+id, nil, nil, &product, "")
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return domain.Product{}, &apperrors.ErrNotFound{Resource: "product", ID: id}
		}
		return domain.Product{}, upstream("get product", err)
	}
	return product, nil
}

// ListProducts fetches a page of products. Filtering, sorting and
// pagination are delegated to the data service's query API.
func (c *Client) ListProducts(ctx context.Context, opts ListOptions) ([]domain.Product, error) {
	var envelope struct {
		Docs []domain.Product `json:"docs"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/products", opts.query(), nil, &envelope, ""); err != nil {
		return nil, upstream("list products", err)
	}
	return envelope.Docs, nil
}

// ListCategories fetches all categories.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var envelope struct {
		Docs []domain.Category `json:"docs"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, nil, &envelope, ""); err != nil {
		return nil, upstream("list categories", err)
	}
	return envelope.Docs, nil
}
