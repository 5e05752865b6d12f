package printing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"cash-trader-be/pkg/register"
)

// Renderer turns a receipt document into a printable raster by calling the
// rendering sidecar.
type Renderer interface {
	Render(ctx context.Context, doc register.ReceiptDocument) ([]byte, error)
}

type httpRenderer struct {
	baseURL string
	client  *http.Client
}

func NewHTTPRenderer(baseURL string) Renderer {
	return &httpRenderer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Render posts the document and returns the raster bytes. The sidecar sizes
// the image to the line count, so we send the full document as-is.
func (r *httpRenderer) Render(ctx context.Context, doc register.ReceiptDocument) ([]byte, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal receipt document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/render", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("renderer unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("renderer returned %d: %s", resp.StatusCode, string(msg))
	}

	raster, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read raster: %w", err)
	}
	if len(raster) == 0 {
		return nil, fmt.Errorf("renderer returned empty raster")
	}

	return raster, nil
}
