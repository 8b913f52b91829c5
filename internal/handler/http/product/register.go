package product

import (
	"net/http"

	exportUC "promo-studio/internal/usecase/export"
	prodUC "promo-studio/internal/usecase/product"
)

// Middleware wraps a handler, matching the signature of the shared
// middleware constructors.
type Middleware func(http.Handler) http.Handler

// Register mounts the product routes on mux. The import route triggers an
// outbound page fetch per call, so it takes its own rate limiting
// middleware.
func Register(mux *http.ServeMux, svc *prodUC.Service, exp *exportUC.Service, importLimiter Middleware) {
	mux.Handle("GET /products", ListHandler{svc})
	mux.Handle("GET /products/{id}", GetHandler{svc})
	mux.Handle("GET /products/export", ExportHandler{exp})

	mux.Handle("POST /products", CreateHandler{svc})
	mux.Handle("POST /products/import", importLimiter(ImportHandler{svc}))
	mux.Handle("POST /products/generate_all", GenerateAllHandler{svc})
	mux.Handle("POST /products/{id}/generate", GenerateHandler{svc})

	mux.Handle("PUT /products/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /products/{id}", DeleteHandler{svc})
}
