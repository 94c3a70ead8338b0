package inventory

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"Inventory/pkg/kit"
)

const (
	maxBodyBytes  = 1 << 20
	readyzTimeout = 1 * time.Second
)

const (
	msgGreeting = "Server is running! Ready to manage inventory."
	msgInvalid  = "Product must have a name and price"
	msgNotFound = "Product not found"
	msgCreated  = "Product added successfully!"
	msgUpdated  = "Product updated successfully"
	msgDeleted  = "Product deleted"
)

var errNotObject = errors.New("body must be a json object or array")

type Server struct {
	Store Store
	Log   *zap.Logger
}

type productResp struct {
	Message string  `json:"message"`
	Product Product `json:"product"`
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.greet)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", s.readyz)

	r.Get("/products", s.list)
	r.Post("/products", s.create)
	r.Get("/products/{id}", s.get)
	r.Put("/products/{id}", s.update)
	r.Delete("/products/{id}", s.remove)

	return r
}

func (s *Server) greet(w http.ResponseWriter, _ *http.Request) {
	kit.WriteText(w, http.StatusOK, msgGreeting)
}

func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyzTimeout)
	defer cancel()

	if err := s.Store.Ping(ctx); err != nil {
		s.logger().Warn("readyz failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	products, err := s.Store.List(r.Context())
	if err != nil {
		s.serverError(w, r, "list products failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	body, err := decodeProduct(w, r)
	if err != nil {
		writeDecodeError(w, r, err)
		return
	}

	stored, err := s.Store.Create(r.Context(), body)
	if errors.Is(err, ErrInvalidProduct) {
		kit.WriteText(w, http.StatusBadRequest, msgInvalid)
		return
	}
	if err != nil {
		s.serverError(w, r, "create product failed", err)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, productResp{Message: msgCreated, Product: stored})
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		kit.WriteText(w, http.StatusNotFound, msgNotFound)
		return
	}

	p, found, err := s.Store.Get(r.Context(), id)
	if err != nil {
		s.serverError(w, r, "get product failed", err, zap.Int64("id", id))
		return
	}
	if !found {
		kit.WriteText(w, http.StatusNotFound, msgNotFound)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		kit.WriteText(w, http.StatusNotFound, msgNotFound)
		return
	}

	patch, err := decodeProduct(w, r)
	if err != nil {
		writeDecodeError(w, r, err)
		return
	}

	p, found, err := s.Store.Update(r.Context(), id, patch)
	if err != nil {
		s.serverError(w, r, "update product failed", err, zap.Int64("id", id))
		return
	}
	if !found {
		kit.WriteText(w, http.StatusNotFound, msgNotFound)
		return
	}
	kit.WriteJSON(w, http.StatusOK, productResp{Message: msgUpdated, Product: p})
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		kit.WriteText(w, http.StatusNotFound, msgNotFound)
		return
	}

	p, found, err := s.Store.Delete(r.Context(), id)
	if err != nil {
		s.serverError(w, r, "delete product failed", err, zap.Int64("id", id))
		return
	}
	if !found {
		kit.WriteText(w, http.StatusNotFound, msgNotFound)
		return
	}
	kit.WriteJSON(w, http.StatusOK, productResp{Message: msgDeleted, Product: p})
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, msg string, err error, fields ...zap.Field) {
	s.logger().Error(msg, append(fields, zap.Error(err))...)
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}

func (s *Server) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

// decodeProduct reads a single JSON object. Numbers are kept as json.Number
// so they round-trip unchanged. An empty body or a JSON array decodes as {}.
func decodeProduct(w http.ResponseWriter, r *http.Request) (Product, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer func() { _ = r.Body.Close() }()

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return Product{}, nil
		}
		return nil, errors.Wrap(err, "decode product")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, errors.Wrap(err, "decode product")
		}
		return nil, errors.New("extra data after json object")
	}

	switch body := v.(type) {
	case map[string]any:
		return Product(body), nil
	case []any:
		return Product{}, nil
	default:
		return nil, errNotObject
	}
}

func writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		kit.WriteError(w, r, http.StatusRequestEntityTooLarge, "body too large", map[string]any{"limit": tooLarge.Limit})
		return
	}
	kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
}
