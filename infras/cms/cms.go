package cms

//go:generate go run go.uber.org/mock/mockgen -source=./cms.go -destination=./mocks/cms_mock.go -package=mocks

import (
	"context"
	"eikaiwa/config"
	"eikaiwa/infras/otel"
	"eikaiwa/shared/constant"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultTimeoutSeconds = 10
	apiPathPrefix         = "/api/v1/"
)

// ListResponse is the standard microCMS list envelope.
type ListResponse[T any] struct {
	Contents   []T `json:"contents"`
	TotalCount int `json:"totalCount"`
	Offset     int `json:"offset"`
	Limit      int `json:"limit"`
}

// Client reads published content from the headless CMS. All endpoints are
// read-only; schema editing stays in the CMS dashboard.
type Client interface {
	GetList(ctx context.Context, endpoint string, params url.Values, out any) error
	Get(ctx context.Context, endpoint, contentID string, out any) error
}

type clientImpl struct {
	config     *config.Config
	httpClient *http.Client
	otel       otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Client {
	timeout := cfg.External.CMS.TimeoutSeconds
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}

	return &clientImpl{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		otel: otl,
	}
}

func (c *clientImpl) GetList(ctx context.Context, endpoint string, params url.Values, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".cms.GetList")
	defer scope.End()
	defer scope.TraceIfError(err)

	target := c.config.External.CMS.BaseURL + apiPathPrefix + endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	return c.fetch(ctx, target, out)
}

func (c *clientImpl) Get(ctx context.Context, endpoint, contentID string, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".cms.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	target := c.config.External.CMS.BaseURL + apiPathPrefix + endpoint + "/" + url.PathEscape(contentID)

	return c.fetch(ctx, target, out)
}

func (c *clientImpl) fetch(ctx context.Context, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build CMS request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderCMSAPIKey, c.config.External.CMS.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", target).Msg("failed to reach CMS")

		return fmt.Errorf("failed to reach CMS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Str("url", target).Msg("CMS returned non-OK status")

		return fmt.Errorf("CMS returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode CMS response: %w", err)
	}

	return nil
}
