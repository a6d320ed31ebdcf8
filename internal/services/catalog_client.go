package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"favorites-backend/internal/config"
	"favorites-backend/internal/metrics"
	"favorites-backend/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
)

// CatalogClient reads films and characters from the public film catalog.
type CatalogClient interface {
	GetFilm(ctx context.Context, id int) (*models.CatalogFilm, error)
	GetCharacter(ctx context.Context, url string) (*models.CatalogCharacter, error)
}

// errCatalogMissing marks a definitive "no such resource" answer. The breaker
// treats it as a healthy response.
var errCatalogMissing = errors.New("catalog resource missing")

type swapiClient struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
	validate   *validator.Validate
	logger     *logrus.Logger
}

func NewCatalogClient(cfg config.CatalogConfig, logger *logrus.Logger) CatalogClient {
	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}

	settings := gobreaker.Settings{
		Name:    "catalog",
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errCatalogMissing)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Catalog circuit breaker changed state")
		},
	}

	return &swapiClient{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		breaker:  gobreaker.NewCircuitBreaker[[]byte](settings),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (c *swapiClient) GetFilm(ctx context.Context, id int) (*models.CatalogFilm, error) {
	url := fmt.Sprintf("%s/films/%d/", c.baseURL, id)

	var film models.CatalogFilm
	if err := c.fetch(ctx, "film", url, &film); err != nil {
		c.logger.WithError(err).WithField("film_id", id).Warn("Catalog film lookup failed")
		return nil, ErrFilmNotFound
	}
	return &film, nil
}

func (c *swapiClient) GetCharacter(ctx context.Context, url string) (*models.CatalogCharacter, error) {
	var character models.CatalogCharacter
	if err := c.fetch(ctx, "character", url, &character); err != nil {
		c.logger.WithError(err).WithField("url", url).Warn("Catalog character lookup failed")
		return nil, ErrFilmNotFound
	}
	return &character, nil
}

// fetch GETs url through the breaker, decodes the body into dest and
// validates it.
func (c *swapiClient) fetch(ctx context.Context, resource, url string, dest interface{}) error {
	start := time.Now()
	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.get(ctx, url)
	})
	metrics.CatalogRequestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CatalogRequests.WithLabelValues(resource, "error").Inc()
		return err
	}

	if err := json.Unmarshal(body, dest); err != nil {
		metrics.CatalogRequests.WithLabelValues(resource, "invalid").Inc()
		return fmt.Errorf("failed to decode catalog %s: %w", resource, err)
	}
	if err := c.validate.Struct(dest); err != nil {
		metrics.CatalogRequests.WithLabelValues(resource, "invalid").Inc()
		return fmt.Errorf("unexpected catalog %s payload: %w", resource, err)
	}

	metrics.CatalogRequests.WithLabelValues(resource, "ok").Inc()
	return nil
}

func (c *swapiClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from catalog: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode < http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: catalog returned status %d", errCatalogMissing, resp.StatusCode)
	default:
		return nil, fmt.Errorf("catalog returned status %d: %s", resp.StatusCode, string(body))
	}
}
