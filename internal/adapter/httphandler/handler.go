package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/slts2025/subhalaxmiteleservices/internal/core/domain"
	"github.com/slts2025/subhalaxmiteleservices/internal/core/port"
)

// GET v1/products?brand=&max_price=&stock=&search= (200 OK, 400 Bad request, 503)
// GET v1/brands (200 OK, 503)
// GET v1/featured (200 OK, 503)
// POST v1/cart JSON {"model" string} (202 Accepted, 400, 404, 503)

const (
	loadFailureMessage     = "failed to load products"
	featuredFailureMessage = "failed to load featured products"
)

type StorefrontHandler struct {
	browser         port.ProductsBrowser
	featured        port.FeaturedBrowser
	cart            port.CartAdder
	defaultMaxPrice float64
}

func RegisterStorefront(
	mux *http.ServeMux,
	browser port.ProductsBrowser,
	featured port.FeaturedBrowser,
	cart port.CartAdder,
	defaultMaxPrice float64,
) {
	h := StorefrontHandler{browser, featured, cart, defaultMaxPrice}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/brands", h.GetBrands)
	mux.HandleFunc("GET /v1/featured", h.GetFeatured)
	mux.HandleFunc("POST /v1/cart", h.PostCart)
}

func (h StorefrontHandler) GetProducts(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "StorefrontHandler.GetProducts"
	log := slog.With("op", op)

	criteria, err := h.parseCriteria(r)
	if err != nil {
		http.Error(w, "invalid max_price", http.StatusBadRequest)
		log.Warn("failed to parse filter criteria", "err", err)
		return
	}

	view, err := h.browser.BrowseProducts(r.Context(), criteria)
	if err != nil {
		http.Error(w, loadFailureMessage, http.StatusServiceUnavailable)
		log.Error("failed to browse products", "err", err)
		return
	}

	writeJSON(w, log, toGridView(view))
}

func (h StorefrontHandler) GetBrands(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "StorefrontHandler.GetBrands"
	log := slog.With("op", op)

	brands, err := h.browser.Brands(r.Context())
	if err != nil {
		http.Error(w, loadFailureMessage, http.StatusServiceUnavailable)
		log.Error("failed to get brands", "err", err)
		return
	}

	if brands == nil {
		brands = []string{}
	}
	writeJSON(w, log, brands)
}

func (h StorefrontHandler) GetFeatured(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "StorefrontHandler.GetFeatured"
	log := slog.With("op", op)

	view, err := h.featured.FeaturedCarousel(r.Context())
	if err != nil {
		http.Error(w, featuredFailureMessage, http.StatusServiceUnavailable)
		log.Error("failed to get featured carousel", "err", err)
		return
	}

	writeJSON(w, log, toCarouselView(view))
}

func (h StorefrontHandler) PostCart(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "StorefrontHandler.PostCart"
	log := slog.With("op", op)

	var action CartAction
	err := json.NewDecoder(r.Body).Decode(&action)
	if err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if action.Model == "" {
		http.Error(w, "model is required", http.StatusBadRequest)
		return
	}

	err = h.cart.AddToCart(r.Context(), action.Model)
	switch {
	case errors.Is(err, domain.ErrUnknownProduct):
		http.Error(w, "unknown product model", http.StatusNotFound)
		log.Warn("cart action for unknown model", "model", action.Model)
		return
	case err != nil:
		http.Error(
			w, "failed to accept cart action", http.StatusServiceUnavailable,
		)
		log.Error("failed to add to cart", "err", err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
	if _, err = w.Write([]byte("Accepted")); err != nil {
		log.Error("failed to write response body", "err", err)
		return
	}

	log.Info("cart action accepted", "model", action.Model)
}

// parseCriteria maps the filter controls onto domain criteria. Absent
// parameters keep their defaults: any brand, configured max price, any
// stock state, empty search. That makes the reset action equal to a
// request without query parameters.
func (h StorefrontHandler) parseCriteria(
	r *http.Request,
) (domain.FilterCriteria, error) {
	q := r.URL.Query()

	c := domain.FilterCriteria{
		Brand:      q.Get("brand"),
		MaxPrice:   h.defaultMaxPrice,
		SearchText: q.Get("search"),
	}

	if v := q.Get("max_price"); v != "" {
		maxPrice, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.FilterCriteria{}, err
		}
		c.MaxPrice = maxPrice
	}

	if v := q.Get("stock"); v != "" {
		stock := domain.StockStateFromCode(v)
		c.Stock = &stock
	}

	return c, nil
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

func toGridView(v domain.GridView) GridView {
	return GridView{
		Total:   v.Total,
		Empty:   v.Empty,
		Message: v.Message,
		Cards:   toCards(v.Cards),
	}
}

func toCarouselView(v domain.CarouselView) CarouselView {
	slides := make([]SlideView, 0, len(v.Slides))
	for _, s := range v.Slides {
		slides = append(slides, SlideView{
			Index:  s.Index,
			Active: s.Active,
			Cards:  toCards(s.Cards),
		})
	}
	return CarouselView{Slides: slides}
}

func toCards(cards []domain.ProductCard) []ProductCard {
	wireCards := make([]ProductCard, 0, len(cards))
	for _, c := range cards {
		wireCards = append(wireCards, ProductCard{
			Brand:         c.Brand,
			BrandLogo:     c.BrandLogoURL,
			Model:         c.Model,
			Image:         c.ImageURL,
			Price:         c.Price,
			OriginalPrice: c.OriginalPrice,
			ShowOriginal:  c.ShowOriginal,
			InStock:       c.InStock,
			StockLabel:    c.StockLabel,
			DetailsURL:    c.DetailsURL,
		})
	}
	return wireCards
}
