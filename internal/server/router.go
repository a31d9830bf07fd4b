package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	companyctrl "darzi/internal/company/controller"
	employeectrl "darzi/internal/employee/controller"
	orderctrl "darzi/internal/order/controller"
	"darzi/internal/utils"
)

func NewRouter(
	orderCtrl *orderctrl.OrderController,
	companyCtrl *companyctrl.CompanyController,
	employeeCtrl *employeectrl.EmployeeController,
	logger *zap.Logger,
) http.Handler {
	mux := chi.NewRouter()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	mux.Use(requestLogger(logger))

	mux.Get("/api/v1/ping", func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "live"})
	})

	mux.Route("/api/v1/orders", func(r chi.Router) {
		r.Get("/", orderCtrl.List)
		r.Post("/", orderCtrl.Create)
		r.Get("/civil", orderCtrl.ListCivil)
		r.Get("/next-id", orderCtrl.NextID)
		r.Get("/stats", orderCtrl.Stats)
		r.Get("/{id}", orderCtrl.Get)
		r.Put("/{id}", orderCtrl.Update)
		r.Patch("/{id}/status", orderCtrl.UpdateStatus)
		r.Delete("/{id}", orderCtrl.Delete)
	})

	mux.Route("/api/v1/companies", func(r chi.Router) {
		r.Get("/", companyCtrl.List)
		r.Post("/", companyCtrl.Create)
		r.Route("/{companyId}", func(r chi.Router) {
			r.Get("/", companyCtrl.Get)
			r.Delete("/", companyCtrl.Delete)
			r.Get("/stats", companyCtrl.Stats)
			r.Get("/employees", employeeCtrl.ListByCompany)
			r.Get("/employees/next-id", employeeCtrl.NextID)
		})
	})

	mux.Route("/api/v1/employees", func(r chi.Router) {
		r.Get("/positions", employeeCtrl.Positions)
		r.Post("/", employeeCtrl.Create)
		r.Get("/{id}", employeeCtrl.Get)
		r.Put("/{id}", employeeCtrl.Update)
		r.Patch("/{id}/status", employeeCtrl.UpdateStatus)
		r.Delete("/{id}", employeeCtrl.Delete)
	})

	return mux
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("duration", time.Since(start)))
		})
	}
}
