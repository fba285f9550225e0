package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	env string,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	settlementHandler SettlementHandler,
	advanceHandler AdvanceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "drivedesk-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

	// Authentication is handled upstream by the CRM's session layer.
	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/", attendanceHandler.Mark)
			r.Get("/", attendanceHandler.List)
		})

		r.Get("/payroll/{staffId}", payrollHandler.Compute)

		r.Route("/payments/salary", func(r chi.Router) {
			r.Post("/orders", settlementHandler.CreateOrder)
			r.Post("/verify", settlementHandler.VerifyPayment)
			r.Post("/manual", settlementHandler.RecordManualPayment)
		})

		r.Route("/compensations", func(r chi.Router) {
			r.Get("/", settlementHandler.ListCompensations)
			r.Get("/{staffId}/{monthLabel}", settlementHandler.GetCompensation)
		})

		r.Route("/advances", func(r chi.Router) {
			r.Post("/", advanceHandler.Create)
			r.Get("/", advanceHandler.List)
			r.Post("/{id}/repayments", advanceHandler.Repay)
		})
	})

	return r
}
