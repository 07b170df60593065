package projection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/norce-drilling/field-service/internal/config"
	"github.com/norce-drilling/field-service/internal/core/domain"
	ports "github.com/norce-drilling/field-service/internal/core/ports/output"

	"github.com/google/uuid"
)

const (
	projectionPath    = "CartographicProjection/"
	conversionSetPath = "CartographicConversionSet"
)

type projectionClient struct {
	baseURL string
	client  *http.Client
}

// NewProjectionClient creates a client for the CartographicProjection service
func NewProjectionClient(cfg *config.ProjectionConfig) ports.ProjectionClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &projectionClient{
		baseURL: joinBase(cfg.HostURL, cfg.BasePath),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func joinBase(host, basePath string) string {
	return strings.TrimRight(host, "/") + "/" + strings.Trim(basePath, "/") + "/"
}

// --- Projections ---

func (c *projectionClient) GetProjectionByID(ctx context.Context, id uuid.UUID) (*domain.CartographicProjection, error) {
	var projection *domain.CartographicProjection
	if err := c.do(ctx, http.MethodGet, projectionPath+id.String(), nil, &projection, domain.ErrProjectionNotFound); err != nil {
		return nil, err
	}
	return projection, nil
}

// --- Conversion jobs ---

func (c *projectionClient) CreateConversionJob(ctx context.Context, job *domain.CartographicConversionSet) error {
	return c.do(ctx, http.MethodPost, conversionSetPath, job, nil, nil)
}

func (c *projectionClient) GetConversionJobByID(ctx context.Context, id uuid.UUID) (*domain.CartographicConversionSet, error) {
	var job *domain.CartographicConversionSet
	if err := c.do(ctx, http.MethodGet, conversionSetPath+"/"+id.String(), nil, &job, domain.ErrConversionJobNotFound); err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrConversionJobNotFound
	}
	return job, nil
}

func (c *projectionClient) DeleteConversionJobByID(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, conversionSetPath+"/"+id.String(), nil, nil, domain.ErrConversionJobNotFound)
}

// do sends one JSON request. A 404 maps to notFound when set; any other non-2xx
// status or transport failure wraps domain.ErrProjectionService.
func (c *projectionClient) do(ctx context.Context, method, path string, body, out any, notFound error) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", domain.ErrProjectionService, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrProjectionService, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound && notFound != nil {
		return notFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s %s returned status %d", domain.ErrProjectionService, method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s response: %v", domain.ErrProjectionService, path, err)
	}
	return nil
}
