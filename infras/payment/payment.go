package payment

//go:generate go run go.uber.org/mock/mockgen -source=./payment.go -destination=./mocks/payment_mock.go -package=mocks

import (
	"context"
	"eikaiwa/config"
	"eikaiwa/infras/otel"
	"eikaiwa/shared/constant"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultTimeoutSeconds = 15
	apiBaseURL            = "https://api.stripe.com/v1"

	IntentStatusSucceeded = "succeeded"
)

// Intent is the subset of a Stripe PaymentIntent the booking flow needs.
type Intent struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client charges lessons through the payment processor. The processor's own
// state machine is not modelled here; only create and confirm are used.
type Client interface {
	CreateIntent(ctx context.Context, amount int64, currency, description, receiptEmail string) (Intent, error)
	ConfirmIntent(ctx context.Context, intentID, paymentMethodID string) (Intent, error)
}

type clientImpl struct {
	config     *config.Config
	httpClient *http.Client
	otel       otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Client {
	timeout := cfg.External.Stripe.TimeoutSeconds
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

func (c *clientImpl) CreateIntent(ctx context.Context, amount int64, currency, description, receiptEmail string) (res Intent, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".payment.CreateIntent")
	defer scope.End()
	defer scope.TraceIfError(err)

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Set("description", description)

	if receiptEmail != "" {
		form.Set("receipt_email", receiptEmail)
	}

	return c.post(ctx, "/payment_intents", form)
}

func (c *clientImpl) ConfirmIntent(ctx context.Context, intentID, paymentMethodID string) (res Intent, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".payment.ConfirmIntent")
	defer scope.End()
	defer scope.TraceIfError(err)

	form := url.Values{}
	form.Set("payment_method", paymentMethodID)

	return c.post(ctx, "/payment_intents/"+url.PathEscape(intentID)+"/confirm", form)
}

func (c *clientImpl) post(ctx context.Context, path string, form url.Values) (Intent, error) {
	var intent Intent

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiBaseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return intent, fmt.Errorf("failed to build payment request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeFormURLEncoded)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+c.config.External.Stripe.SecretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to reach payment processor")

		return intent, fmt.Errorf("failed to reach payment processor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error.Message != "" {
			log.Error().
				Int("status", resp.StatusCode).
				Str("code", apiErr.Error.Code).
				Msg("payment processor rejected request")

			return intent, fmt.Errorf("payment processor rejected request: %s", apiErr.Error.Message)
		}

		return intent, fmt.Errorf("payment processor returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return intent, fmt.Errorf("failed to decode payment response: %w", err)
	}

	return intent, nil
}
