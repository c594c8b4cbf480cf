package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/PocketGarden_Go/internal/crafting"
	"github.com/osse101/PocketGarden_Go/internal/domain"
	"github.com/osse101/PocketGarden_Go/internal/garden"
	"github.com/osse101/PocketGarden_Go/internal/handler"
	"github.com/osse101/PocketGarden_Go/internal/inventory"
	"github.com/osse101/PocketGarden_Go/internal/logger"
	"github.com/osse101/PocketGarden_Go/internal/metrics"
	"github.com/osse101/PocketGarden_Go/internal/persistence"
	"github.com/osse101/PocketGarden_Go/internal/shop"
	"github.com/osse101/PocketGarden_Go/internal/sse"
)

// Options configures the HTTP listener and its access control
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
}

// Deps are the services exposed over HTTP
type Deps struct {
	State     handler.StateReader
	Garden    garden.Service
	Shop      shop.Service
	Inventory inventory.Service
	Kitchen   crafting.Station
	Workbench crafting.Station
	Saves     handler.SaveManager
	Storage   handler.HealthChecker
	// Now dates export file names; defaults to time.Now
	Now func() time.Time
	// Events streams game events; the route is absent when nil
	Events *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router with the middleware stack and all routes
func NewRouter(opts Options, deps Deps) chi.Router {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	guard := NewRequestGuard(RateLimitPerWindow, RateLimitWindow, nil)

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, guard))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, guard))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Storage))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	gardenH := handler.NewGardenHandler(deps.Garden)
	shopH := handler.NewShopHandler(deps.Shop)
	inventoryH := handler.NewInventoryHandler(deps.Inventory)
	craftingH := handler.NewCraftingHandler(deps.Kitchen, deps.Workbench)
	saveH := handler.NewSaveHandler(deps.Saves, deps.Now)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))

			r.Get("/state", handler.HandleGetState(deps.State))

			r.Route("/garden", func(r chi.Router) {
				r.Get("/{plotID}", gardenH.HandleGetPlot)
				r.Post("/plant", gardenH.HandlePlant)
				r.Post("/quick-plant", gardenH.HandleQuickPlant)
				r.Post("/plant-all", gardenH.HandlePlantAll)
				r.Post("/harvest", gardenH.HandleHarvest)
				r.Post("/harvest-all", gardenH.HandleHarvestAll)
				r.Post("/select-seed", gardenH.HandleSelectSeed)
				r.Post("/select-plot", gardenH.HandleSelectPlot)
			})

			r.Route("/shop", func(r chi.Router) {
				r.Get("/", shopH.HandleGetShop)
				r.Post("/buy", shopH.HandleBuySeed)
				r.Post("/buy-plot", shopH.HandleBuyPlot)
				r.Post("/restock", shopH.HandleRestock)
			})

			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", inventoryH.HandleGetInventory)
				r.Post("/sell", inventoryH.HandleSell)
			})

			r.Get("/recipes/{kind}", craftingH.HandleGetRecipes)
			r.Post("/cook", craftingH.HandleMake(domain.RecipeKindCooking))
			r.Post("/craft", craftingH.HandleMake(domain.RecipeKindCrafting))

			r.Post("/save", saveH.HandleSave)
			r.Get("/save/export", saveH.HandleExport)
			r.Post("/save/reset", saveH.HandleReset)
		})

		// Imports carry a whole save document
		r.With(RequestSizeLimitMiddleware(persistence.MaxImportBytes)).Post("/save/import", saveH.HandleImport)

		if deps.Events != nil {
			r.Get("/events", sse.Handler(deps.Events))
		}
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// isQuietPath reports probe and scrape endpoints that are not request-logged
func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
