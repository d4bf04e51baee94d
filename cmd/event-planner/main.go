package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"eventPlanner/internal/config"
	"eventPlanner/internal/http-server/handlers/account/login"
	"eventPlanner/internal/http-server/handlers/account/logout"
	"eventPlanner/internal/http-server/handlers/account/register"
	"eventPlanner/internal/http-server/handlers/budget/createBudgetItem"
	"eventPlanner/internal/http-server/handlers/budget/deleteBudgetItem"
	"eventPlanner/internal/http-server/handlers/budget/getBudget"
	"eventPlanner/internal/http-server/handlers/budget/updateBudgetItem"
	"eventPlanner/internal/http-server/handlers/event/createEvent"
	"eventPlanner/internal/http-server/handlers/event/dashboard"
	"eventPlanner/internal/http-server/handlers/event/deleteEvent"
	"eventPlanner/internal/http-server/handlers/event/getAllEvents"
	"eventPlanner/internal/http-server/handlers/event/getEventInfo"
	"eventPlanner/internal/http-server/handlers/event/updateEvent"
	"eventPlanner/internal/http-server/handlers/guest/deleteGuest"
	"eventPlanner/internal/http-server/handlers/guest/listGuests"
	"eventPlanner/internal/http-server/handlers/guest/updateRSVP"
	"eventPlanner/internal/http-server/handlers/health"
	"eventPlanner/internal/http-server/handlers/invitation/createInvitation"
	"eventPlanner/internal/http-server/handlers/invitation/deleteInvitation"
	"eventPlanner/internal/http-server/handlers/invitation/listInvitations"
	"eventPlanner/internal/http-server/handlers/invitation/myInvitations"
	"eventPlanner/internal/http-server/handlers/invitation/respondInvitation"
	"eventPlanner/internal/http-server/handlers/vendors/assignVendor"
	"eventPlanner/internal/http-server/handlers/vendors/createVendor"
	"eventPlanner/internal/http-server/handlers/vendors/deleteEventVendor"
	"eventPlanner/internal/http-server/handlers/vendors/deleteVendor"
	"eventPlanner/internal/http-server/handlers/vendors/listEventVendors"
	"eventPlanner/internal/http-server/handlers/vendors/listVendors"
	"eventPlanner/internal/http-server/handlers/vendors/updateEventVendor"
	"eventPlanner/internal/http-server/handlers/vendors/updateVendor"
	"eventPlanner/internal/http-server/middleware/mwauth"
	"eventPlanner/internal/http-server/middleware/mwlogger"
	"eventPlanner/internal/lib/logger/handlers/slogpretty"
	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/lib/session"
	"eventPlanner/internal/notifier"
	"eventPlanner/internal/notifier/rabbitmq"
	"eventPlanner/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event planner", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.TTL)

	var publisher notifier.Publisher = notifier.Nop{}
	if cfg.RabbitMQ.URL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, log)
		if err != nil {
			log.Error("failed to connect to rabbitmq", sl.Err(err))
			os.Exit(1)
		}
		defer p.Close()

		publisher = p
		log.Info("invitation notifications enabled", slog.String("exchange", rabbitmq.ExchangeName))
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/health", health.New(log, storage))
	router.Post("/register", register.New(log, storage))
	router.Get(mwauth.LoginPath, login.Prompt(log))
	router.Post(mwauth.LoginPath, login.New(log, storage, sessions, cfg.Session.CookieSecure))
	router.Post("/logout", logout.New(log, cfg.Session.CookieSecure))

	router.Group(func(r chi.Router) {
		r.Use(mwauth.New(log, sessions))

		r.Get("/dashboard", dashboard.New(log, storage))

		r.Get("/events", getAllEvents.New(log, storage))
		r.Post("/events", createEvent.New(log, storage))
		r.Get("/events/{id}", getEventInfo.New(log, storage))
		r.Put("/events/{id}", updateEvent.New(log, storage))
		r.Delete("/events/{id}", deleteEvent.New(log, storage))

		r.Get("/event/{id}/invitations", listInvitations.New(log, storage))
		r.Post("/event/{id}/invitations", createInvitation.New(log, storage, publisher))
		r.Delete("/invitations/{id}", deleteInvitation.New(log, storage))
		r.Get(respondInvitation.RedirectPath, myInvitations.New(log, storage))
		r.Post("/invitations/{id}/{action}", respondInvitation.New(log, storage, publisher))

		r.Get("/event/{id}/guests", listGuests.New(log, storage))
		r.Delete("/guests/{id}", deleteGuest.New(log, storage))
		r.Put("/rsvp/{id}", updateRSVP.New(log, storage))

		r.Get("/vendors", listVendors.New(log, storage))
		r.Post("/vendors", createVendor.New(log, storage))
		r.Put("/vendors/{id}", updateVendor.New(log, storage))
		r.Delete("/vendors/{id}", deleteVendor.New(log, storage))

		r.Get("/event/{id}/vendors", listEventVendors.New(log, storage))
		r.Post("/event/{id}/vendors", assignVendor.New(log, storage))
		r.Put("/eventvendors/{id}", updateEventVendor.New(log, storage))
		r.Delete("/eventvendors/{id}", deleteEventVendor.New(log, storage))

		r.Get("/event/{id}/budget", getBudget.New(log, storage))
		r.Post("/event/{id}/budget", createBudgetItem.New(log, storage))
		r.Put("/budget/{id}", updateBudgetItem.New(log, storage))
		r.Delete("/budget/{id}", deleteBudgetItem.New(log, storage))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.Timeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
