package webhook

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/adiouf/finsight/internal/domain/models"
)

// Client pushes digests to an external notification endpoint.
type Client interface {
	PostDigest(ctx context.Context, digest models.Digest) error
}

// HTTPClient is a resty-backed implementation of Client. It POSTs the digest
// as JSON to a single configured URL, the shape most incoming-webhook
// services accept.
type HTTPClient struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds a webhook client for the given URL.
func NewClient(url string) *HTTPClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &HTTPClient{
		httpClient: restyClient,
		url:        url,
	}
}

// PostDigest delivers the digest payload.
func (c *HTTPClient) PostDigest(ctx context.Context, digest models.Digest) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(digest).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("post digest: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("webhook error: status=%d, body=%.200s", resp.StatusCode(), resp.String())
	}

	return nil
}
