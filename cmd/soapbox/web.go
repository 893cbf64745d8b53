package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/invopop/jsonschema"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"soapbox/internal/cache"
	"soapbox/internal/cards"
	"soapbox/internal/cart"
	"soapbox/internal/catalog"
	"soapbox/internal/config"
	"soapbox/internal/content"
	"soapbox/internal/printify"
	"soapbox/internal/users"
)

type server struct {
	svc    *catalog.Service
	carts  *cart.Store
	users  *users.Storage
	sender cards.Sender
}

func runServer(cfg *config.Config, addr string, forceMock bool) error {
	var fetcher catalog.Fetcher
	if cfg.HasUpstream() && !forceMock {
		client, err := printify.NewClient(cfg.Printify)
		if err != nil {
			return fmt.Errorf("failed to create upstream catalog client: %w", err)
		}
		fetcher = client
	} else {
		slog.Info("upstream catalog credentials absent, serving mock catalog")
	}

	s := &server{
		svc:    catalog.NewService(fetcher),
		carts:  cart.NewStore(),
		users:  users.NewStorage(cache.NewFileCache("data/users")),
		sender: cards.NewSender(cfg.Cards),
	}

	mux := http.NewServeMux()
	s.Register(mux)

	slog.Info("serving soapbox", "addr", addr)
	return http.ListenAndServe(addr, WithMiddleware(mux))
}

func (s *server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/products", s.handleProducts)
	mux.HandleFunc("GET /api/products/{id}", s.handleProduct)
	mux.HandleFunc("GET /api/products/{id}/colors", s.handleColors)
	mux.HandleFunc("POST /api/products/{id}/resolve", s.handleResolve)

	mux.HandleFunc("GET /api/carts/{cart}", s.handleCart)
	mux.HandleFunc("POST /api/carts/{cart}/items", s.handleCartAdd)

	mux.HandleFunc("GET /api/news", s.handleNews)
	mux.HandleFunc("GET /api/trivia", s.handleTrivia)
	mux.HandleFunc("POST /api/trivia/{id}", s.handleTriviaAnswer)

	mux.HandleFunc("POST /api/cards", s.handleCardSend)

	mux.HandleFunc("POST /api/users", s.handleUserLogin)
	mux.HandleFunc("GET /api/users/me", s.handleMe)
	mux.HandleFunc("POST /api/users/me/favorites", s.handleToggleFavorite)

	mux.HandleFunc("GET /debug/schema", s.handleSchema)
}

func (s *server) handleProducts(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, "invalid page", http.StatusBadRequest)
			return
		}
		page = parsed
	}

	products := s.svc.Products(r.Context(), page)
	writeJSON(w, r, map[string]any{
		"data":  products,
		"count": len(products),
	})
}

func (s *server) handleProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := s.lookupProduct(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, map[string]any{
		"product":     product,
		"displayTags": catalog.DisplayTags(product),
	})
}

func (s *server) handleColors(w http.ResponseWriter, r *http.Request) {
	product, ok := s.lookupProduct(w, r)
	if !ok {
		return
	}

	mapping := catalog.BuildColorMapping(product)
	imageToColor := make(map[string]string, len(mapping.ImageToColor))
	for index, color := range mapping.ImageToColor {
		imageToColor[strconv.Itoa(index)] = color
	}
	writeJSON(w, r, map[string]any{
		"colorToImage": mapping.ColorToImage,
		"imageToColor": imageToColor,
	})
}

func (s *server) handleResolve(w http.ResponseWriter, r *http.Request) {
	product, ok := s.lookupProduct(w, r)
	if !ok {
		return
	}

	var body struct {
		Selection map[string]string `json:"selection"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response := map[string]any{
		"purchasable": false,
	}
	if variant := catalog.ResolveVariant(product.Variants, body.Selection); variant != nil {
		response["purchasable"] = variant.IsEnabled
		response["variant"] = variant
	}
	if color, ok := body.Selection["Color"]; ok {
		if index, mapped := catalog.ThumbnailForColor(product, color); mapped {
			response["imageIndex"] = index
		}
	}
	writeJSON(w, r, response)
}

func (s *server) handleCart(w http.ResponseWriter, r *http.Request) {
	cartID := r.PathValue("cart")
	total := s.carts.Total(cartID)
	writeJSON(w, r, map[string]any{
		"items":          s.carts.Items(cartID),
		"totalCents":     total.Cents(),
		"totalFormatted": total.String(),
	})
}

func (s *server) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string            `json:"productId"`
		Selection map[string]string `json:"selection"`
		Quantity  int               `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	product, err := s.svc.Product(r.Context(), body.ProductID)
	if err != nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	variant := catalog.ResolveVariant(product.Variants, body.Selection)
	if variant == nil {
		http.Error(w, "no purchasable variant for this combination", http.StatusUnprocessableEntity)
		return
	}

	item, err := s.carts.Add(r.PathValue("cart"), product, variant, body.Quantity)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, cart.ErrVariantDisabled) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(item); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode response", "error", err)
	}
}

func (s *server) handleNews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, content.News())
}

func (s *server) handleTrivia(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, content.Trivia())
}

func (s *server) handleTriviaAnswer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Choice int `json:"choice"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	correct, err := content.CheckAnswer(r.PathValue("id"), body.Choice)
	if err != nil {
		http.Error(w, "unknown question", http.StatusNotFound)
		return
	}
	writeJSON(w, r, map[string]any{"correct": correct})
}

func (s *server) handleCardSend(w http.ResponseWriter, r *http.Request) {
	var card cards.Card
	if err := json.NewDecoder(r.Body).Decode(&card); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.sender.Send(r.Context(), card); err != nil {
		slog.ErrorContext(r.Context(), "failed to send greeting card", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, r, map[string]any{"sent": true})
}

func (s *server) handleUserLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	user, err := s.users.FindOrCreateByEmail(body.Email)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to create demo user", "error", err)
		http.Error(w, "unable to create account", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     users.CookieName,
		Value:    user.ID,
		Path:     "/",
		HttpOnly: true,
	})
	writeJSON(w, r, user)
}

func (s *server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, user)
}

func (s *server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	var body struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ProductID == "" {
		http.Error(w, "productId is required", http.StatusBadRequest)
		return
	}

	if err := s.users.ToggleFavorite(user, body.ProductID); err != nil {
		slog.ErrorContext(r.Context(), "failed to update favorites", "error", err)
		http.Error(w, "unable to update favorites", http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, user)
}

func (s *server) handleSchema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, jsonschema.Reflect(&catalog.Product{}))
}

func (s *server) lookupProduct(w http.ResponseWriter, r *http.Request) (*catalog.Product, bool) {
	product, err := s.svc.Product(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return nil, false
	}
	return product, true
}

func (s *server) currentUser(w http.ResponseWriter, r *http.Request) (*users.User, bool) {
	cookie, err := r.Cookie(users.CookieName)
	if err != nil {
		http.Error(w, "not signed in", http.StatusUnauthorized)
		return nil, false
	}
	user, err := s.users.GetByID(cookie.Value)
	if err != nil {
		http.Error(w, "not signed in", http.StatusUnauthorized)
		return nil, false
	}
	return user, true
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode response", "error", err)
	}
}
