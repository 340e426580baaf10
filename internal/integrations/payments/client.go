package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultCurrency = "usd"

// Client клиент внешнего платежного шлюза
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платежного шлюза
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateIntent создает платежное намерение на сумму бронирования
func (c *Client) CreateIntent(ctx context.Context, reservationID string, amount float64) (*Intent, error) {
	body, err := json.Marshal(createIntentRequest{
		ReservationID: reservationID,
		Amount:        amount,
		Currency:      defaultCurrency,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/payment_intents", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	// Повтор запроса с тем же ключом не создает второй платеж
	req.Header.Set("Idempotency-Key", reservationID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Payments gateway unavailable for reservation %s: %v", reservationID, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusPaymentRequired, http.StatusUnprocessableEntity:
		var gwErr ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&gwErr)
		return nil, fmt.Errorf("%w: %s", ErrDeclined, gwErr.Message)
	default:
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var intent Intent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if intent.ID == "" {
		return nil, fmt.Errorf("%w: empty intent id", ErrInvalidResponse)
	}

	c.log.Info("Payments gateway: intent %s created for reservation %s", intent.ID, reservationID)
	return &intent, nil
}
