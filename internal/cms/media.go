package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	apperrors "github.com/luxeshop/storefront-api/pkg/errors"
)

// UploadFile uploads one file to the media collection and returns the
// created media document id. Each upload is an independent request; the
// caller decides what a partial batch failure means.
func (c *Client) UploadFile(ctx context.Context, data []byte, filename, mimeType string) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", mimeType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", &apperrors.ErrUpstream{Op: "upload media", Err: err}
	}
	if _, err := part.Write(data); err != nil {
		return "", &apperrors.ErrUpstream{Op: "upload media", Err: err}
	}
	if err := writer.Close(); err != nil {
		return "", &apperrors.ErrUpstream{Op: "upload media", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/media", &buf)
	if err != nil {
		return "", &apperrors.ErrUpstream{Op: "upload media", Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.setAuth(req, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &apperrors.ErrUpstream{Op: "upload media", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &apperrors.ErrUpstream{Op: "upload media", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &apperrors.ErrUpstream{Op: "upload media", Err: &statusError{Code: resp.StatusCode, Body: string(body)}}
	}

	var envelope struct {
		Doc struct {
			ID string `json:"id"`
		} `json:"doc"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", &apperrors.ErrUpstream{Op: "upload media", Err: err}
	}

	return envelope.Doc.ID, nil
}
