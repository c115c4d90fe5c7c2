package reservastore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bananaltda/BRS-ReservationService/internal/domain"
)

// Client talks to the remote reservation store over HTTP. It is the only
// component that crosses the store boundary; every method maps to one of the
// store's operations on /reservas.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a store client. baseURL is the API root, e.g.
// "http://localhost:8080/api".
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// List fetches the full reservation set, ordered by start time.
func (c *Client) List(ctx context.Context) ([]*domain.Reservation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reservas", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.decodeError(resp)
	}

	var dtos []reservationDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	reservations := make([]*domain.Reservation, 0, len(dtos))
	for i := range dtos {
		r, err := dtos[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: reservation id=%d: %v", ErrInvalidResponse, dtos[i].ID, err)
		}
		reservations = append(reservations, r)
	}

	return reservations, nil
}

// Create submits a new reservation and returns the stored record.
func (c *Client) Create(ctx context.Context, input *domain.ReservationInput) (*domain.Reservation, error) {
	return c.mutate(ctx, http.MethodPost, c.baseURL+"/reservas", input, http.StatusCreated)
}

// Update replaces the reservation identified by id and returns the stored
// record.
func (c *Client) Update(ctx context.Context, id int64, input *domain.ReservationInput) (*domain.Reservation, error) {
	return c.mutate(ctx, http.MethodPut, fmt.Sprintf("%s/reservas/%d", c.baseURL, id), input, http.StatusOK)
}

// Delete removes the reservation identified by id.
func (c *Client) Delete(ctx context.Context, id int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/reservas/%d", c.baseURL, id), nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrReservationNotFound
	default:
		return c.decodeError(resp)
	}
}

// Locais fetches the distinct site names known to the store.
func (c *Client) Locais(ctx context.Context) ([]string, error) {
	return c.fetchNames(ctx, c.baseURL+"/locais")
}

// Salas fetches the distinct room names, optionally scoped to one site.
func (c *Client) Salas(ctx context.Context, local string) ([]string, error) {
	u := c.baseURL + "/salas"
	if local != "" {
		u += "?local=" + url.QueryEscape(local)
	}
	return c.fetchNames(ctx, u)
}

func (c *Client) mutate(ctx context.Context, method, url string, input *domain.ReservationInput, wantStatus int) (*domain.Reservation, error) {
	payload := PayloadFromInput(input)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		if resp.StatusCode == http.StatusNotFound {
			return nil, ErrReservationNotFound
		}
		return nil, c.decodeError(resp)
	}

	var envelope mutationResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	reservation, err := envelope.Reserva.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return reservation, nil
}

func (c *Client) fetchNames(ctx context.Context, url string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.decodeError(resp)
	}

	var names []string
	if err := json.NewDecoder(resp.Body).Decode(&names); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return names, nil
}

// decodeError turns a non-2xx response into an *APIError carrying the
// store-provided message, falling back to a generic one when the body is not
// the expected {"erro": ...} envelope.
func (c *Client) decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var envelope errorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Erro != "" {
		c.log.Warn("store returned status=%d erro=%q", resp.StatusCode, envelope.Erro)
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Erro}
	}

	c.log.Error("store returned unexpected status=%d body=%q", resp.StatusCode, string(body))
	return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
}
