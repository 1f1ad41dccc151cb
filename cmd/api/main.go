package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/evolution-relay/internal/config"
	"github.com/xavierca1/evolution-relay/internal/infra/database"
	"github.com/xavierca1/evolution-relay/internal/infra/http/handlers"
	metrics "github.com/xavierca1/evolution-relay/internal/infra/http/middleware"
	"github.com/xavierca1/evolution-relay/internal/infra/integration/evolution"
	"github.com/xavierca1/evolution-relay/internal/infra/mail"
	"github.com/xavierca1/evolution-relay/internal/infra/queue"
	"github.com/xavierca1/evolution-relay/internal/infra/worker"
	"github.com/xavierca1/evolution-relay/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuração inválida: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatal(err)
	}

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Close()

	// 1. Repositórios e adapters
	deliveryRepo := database.NewDeliveryRepository(db)
	producer := queue.NewProducer(rabbitMQ.Ch)
	recorder := metrics.NewRecorder()

	service := evolution.NewService(cfg.EvolutionBaseURL, cfg.EvolutionAPIKey, cfg.EvolutionTimeout)
	client := evolution.NewClient(service, cfg.EvolutionInstance)
	gateway := usecase.NewEvolutionGateway(client)

	alerts := []usecase.AlertService{
		mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.AlertEmail),
	}
	if cfg.AlertWhatsApp != "" {
		alerts = append(alerts, mail.NewWhatsAppSender(client.Message, cfg.AlertWhatsApp))
	}

	// 2. UseCases
	enqueueUC := usecase.NewEnqueueMessageUseCase(deliveryRepo, producer, recorder, cfg.EvolutionInstance)
	getDeliveryUC := usecase.NewGetDeliveryUseCase(deliveryRepo)
	dispatchUC := usecase.NewDispatchMessageUseCase(deliveryRepo, gateway, recorder, alerts...)
	labelUC := usecase.NewHandleLabelUseCase(gateway, cfg.EvolutionInstance)
	callUC := usecase.NewOfferCallUseCase(gateway, cfg.EvolutionInstance)
	instanceUC := usecase.NewInstanceUseCase(gateway, cfg.EvolutionInstance)

	// 3. Worker (consome a fila e entrega na Evolution API)
	consumer := queue.NewWorker(rabbitMQ.Ch, dispatchUC)
	go func() {
		if err := consumer.Start(ctx, queue.QueueName); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("❌ Worker parou: %v", err)
			stop()
		}
	}()

	go worker.NewStaleDeliveryWorker(db, cfg.DeliveryExpiration).Start(ctx)

	// 4. Handlers
	messageHandler := handlers.NewMessageHandler(enqueueUC, getDeliveryUC)
	gatewayHandler := handlers.NewGatewayHandler(labelUC, callUC, instanceUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, instanceUC)

	rateLimiter := handlers.NewRateLimiter(cfg.MessageRateLimit, time.Minute)
	go rateLimiter.Cleanup(ctx.Done(), 10*time.Minute)

	// 5. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/messages", func(r chi.Router) {
		r.With(rateLimiter.Middleware).Group(func(r chi.Router) {
			r.Post("/text", messageHandler.SendText)
			r.Post("/buttons", messageHandler.SendButtons)
			r.Post("/list", messageHandler.SendList)
			r.Post("/contact", messageHandler.SendContact)
			r.Post("/location", messageHandler.SendLocation)
		})
		r.Get("/{id}", messageHandler.GetStatus)
	})

	r.Post("/labels", gatewayHandler.HandleLabel)
	r.Post("/calls", gatewayHandler.OfferCall)
	r.Get("/instances", gatewayHandler.ListInstances)
	r.Post("/instances", gatewayHandler.CreateInstance)
	r.Get("/instances/{instance}/state", gatewayHandler.InstanceState)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("🔥 Evolution relay rodando na porta %s (instância padrão: %s)", cfg.ServerPort, cfg.EvolutionInstance)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
