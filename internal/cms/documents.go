package cms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	apperrors "github.com/luxeshop/storefront-api/pkg/errors"
)

// ListOptions narrows and pages a collection listing. Where keys use the
// data service's filter convention (field name, optionally suffixed with
// an operator such as "category.equals").
type ListOptions struct {
	Where map[string]string
	Sort  string
	Limit int
	Page  int
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	for key, value := range o.Where {
		q.Set("where["+key+"]", value)
	}
	if o.Sort != "" {
		q.Set("sort", o.Sort)
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	return q
}

// docEnvelope is the mutation response wrapper: {"doc": {...}}.
type docEnvelope struct {
	Doc json.RawMessage `json:"doc"`
}

func (e docEnvelope) decode(op string, out interface{}) error {
	if out == nil || len(e.Doc) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Doc, out); err != nil {
		return &apperrors.ErrUpstream{Op: op, Err: err}
	}
	return nil
}

// CreateDocument creates a document in a collection and decodes the
// created document (including its server-issued id) into out.
func (c *Client) CreateDocument(ctx context.Context, collection string, doc, out interface{}) error {
	var envelope docEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/"+collection, nil, doc, &envelope, ""); err != nil {
		return upstream("create "+collection, err)
	}
	return envelope.decode("create "+collection, out)
}

// UpdateDocument applies a partial update to a document and decodes the
// updated document into out.
func (c *Client) UpdateDocument(ctx context.Context, collection, id string, patch, out interface{}) error {
	var envelope docEnvelope
	err := c.do(ctx, http.MethodPatch, "/api/"+collection+"/"+id, nil, patch, &envelope, "")
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return &apperrors.ErrNotFound{Resource: collection, ID: id}
		}
		return upstream("update "+collection, err)
	}
	return envelope.decode("update "+collection, out)
}

// GetDocument fetches a single document by id. Get-by-id returns the
// document directly, not wrapped in an envelope.
func (c *Client) GetDocument(ctx context.Context, collection, id string, out interface{}) error {
	err := c.do(ctx, http.MethodGet, "/api/"+collection+"/"+id, nil, nil, out, "")
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return &apperrors.ErrNotFound{Resource: collection, ID: id}
		}
		return upstream("get "+collection, err)
	}
	return nil
}

// ListDocuments fetches a page of documents from a collection. The
// response wraps results as {"docs": [...]}; out must point at a struct
// with a matching Docs field.
func (c *Client) ListDocuments(ctx context.Context, collection string, opts ListOptions, out interface{}) error {
	if err := c.do(ctx, http.MethodGet, "/api/"+collection, opts.query(), nil, out, ""); err != nil {
		return upstream("list "+collection, err)
	}
	return nil
}
