package http

import (
	"log/slog"
	"os"

	"github.com/choongman-erp/erp-backend-go/internal/handler/http/middleware"
	"github.com/choongman-erp/erp-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	masterHandler MasterHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "choongman-erp"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/events", attendanceHandler.SubmitEvent)
				r.Get("/events", attendanceHandler.List)
				r.Get("/summaries", attendanceHandler.DailySummaries)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/events/{id}/approval", attendanceHandler.Approve)
					r.Post("/force-clock-out", attendanceHandler.ForceClockOut)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				// Manager only
				r.Use(middleware.RequireManager)
				r.Get("/preview", payrollHandler.Preview)
				r.Post("/records", payrollHandler.Save)
				r.Get("/records", payrollHandler.Records)
				r.Post("/confirm", payrollHandler.Confirm)
			})

			r.Route("/stores", func(r chi.Router) {
				r.Get("/", masterHandler.ListStores)
				r.Get("/{id}", masterHandler.GetStore)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", masterHandler.ListShifts)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Put("/", masterHandler.UpsertShift)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", masterHandler.ListHolidays)

				// Head office only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHeadOffice)
					r.Put("/", masterHandler.UpsertHoliday)
					r.Delete("/{id}", masterHandler.DeleteHoliday)
				})
			})
		})
	})
	return r
}
