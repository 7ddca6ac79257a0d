package catalogsource

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/slts2025/subhalaxmiteleservices/internal/core/domain"
	"github.com/slts2025/subhalaxmiteleservices/internal/core/port"
)

var _ port.CatalogFetcher = (*CatalogSource)(nil)

// A CatalogSource reads the remote product catalog over plain HTTP GET.
// The endpoint returns a JSON object with a "data" list of records
// whose keys, typos included, come verbatim from the source system.
type CatalogSource struct {
	url    string
	client *http.Client
}

func New(url string, timeout time.Duration) CatalogSource {
	return CatalogSource{url, &http.Client{Timeout: timeout}}
}

type catalogResponse struct {
	Data []rawProduct `json:"data"`
}

type rawProduct struct {
	Company     string  `json:"Company"`
	BrandLogo   string  `json:"Barnd Logo Image"`
	Model       string  `json:"Model"`
	ImageLink   string  `json:"imagelink"`
	Original    float64 `json:"Original"`
	Offer       float64 `json:"Offer"`
	Price       float64 `json:"Price"`
	ViewDetails string  `json:"View Details"`
	Stock       string  `json:"Stock"`
}

// FetchCatalog issues a single GET against the catalog endpoint. Any
// transport failure, non-2xx status, invalid JSON or missing data field
// is surfaced as [domain.ErrCatalogUnavailable]; partial data is never
// accepted.
func (s CatalogSource) FetchCatalog(
	ctx context.Context,
) ([]domain.RawRecord, error) {
	const op = "CatalogSource.FetchCatalog"
	log := slog.With("op", op)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf(
			"%s: %w: %v", op, domain.ErrCatalogUnavailable, err,
		)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			log.Error("failed to close response body", "err", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf(
			"%s: %w: unexpected status %s",
			op, domain.ErrCatalogUnavailable, res.Status,
		)
	}

	var body catalogResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf(
			"%s: %w: %v", op, domain.ErrCatalogUnavailable, err,
		)
	}

	if body.Data == nil {
		return nil, fmt.Errorf(
			"%s: %w: response has no data field",
			op, domain.ErrCatalogUnavailable,
		)
	}

	log.Info("catalog fetched", "nRecords", len(body.Data))
	return toDomain(body.Data), nil
}

func toDomain(rs []rawProduct) (domainRs []domain.RawRecord) {
	for _, r := range rs {
		domainRs = append(domainRs, domain.RawRecord{
			Company:       r.Company,
			BrandLogo:     r.BrandLogo,
			Model:         r.Model,
			ImageLinks:    r.ImageLink,
			OriginalPrice: r.Original,
			Offer:         r.Offer,
			Price:         r.Price,
			DetailsURL:    r.ViewDetails,
			StockCode:     r.Stock,
		})
	}
	return domainRs
}
