package printing

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Printer sends a rendered raster to the thermal printer gateway.
type Printer interface {
	Print(ctx context.Context, raster []byte) error
}

type httpPrinter struct {
	baseURL string
	client  *http.Client
}

func NewHTTPPrinter(baseURL string) Printer {
	return &httpPrinter{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Print uploads the raster. The gateway feeds and cuts after printing.
func (p *httpPrinter) Print(ctx context.Context, raster []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/print?cut=true", bytes.NewReader(raster))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "image/png")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("printer unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("printer returned %d: %s", resp.StatusCode, string(msg))
	}

	return nil
}
