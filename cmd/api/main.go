package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clickmassa/volt-credit-middleware/internal/auth"
	"github.com/clickmassa/volt-credit-middleware/internal/config"
	"github.com/clickmassa/volt-credit-middleware/internal/infra/http/handlers"
	"github.com/clickmassa/volt-credit-middleware/internal/infra/http/middleware"
	"github.com/clickmassa/volt-credit-middleware/internal/infra/integration/highconsult"
	"github.com/clickmassa/volt-credit-middleware/internal/infra/integration/v8"
	"github.com/clickmassa/volt-credit-middleware/internal/infra/integration/viacep"
	"github.com/clickmassa/volt-credit-middleware/internal/usecase"
)

const serviceName = "volt-credit-middleware"

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Iniciando %s (ambiente: %s)", serviceName, cfg.Environment)
	log.Printf("V8 Base URL: %s", cfg.V8BaseURL)

	// 1. Autenticação e clients
	tokenManager := auth.NewTokenManager(
		cfg.V8AuthURL, cfg.V8ClientID, cfg.V8Username, cfg.V8Password,
		cfg.V8Audience, cfg.TokenCacheTTL,
	)

	// Sonda de credencial: falha não derruba o servidor, só avisa.
	probeCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if _, err := tokenManager.GetToken(probeCtx); err != nil {
		log.Printf("Falha na autenticação V8: %v", err)
		log.Println("Servidor continuará, mas chamadas à API V8 falharão")
	} else {
		log.Println("Autenticação V8 funcionando!")
	}
	cancel()

	v8Client := v8.NewClient(cfg.V8BaseURL, tokenManager, cfg.V8ConfigID, cfg.V8Provider)
	highConsultClient := highconsult.NewClient(cfg.HighConsultAPIURL)
	viaCepClient := viacep.NewClient(cfg.ViaCepAPIURL)

	// 2. UseCases
	cpfUC := usecase.NewCpfUseCase(highConsultClient)
	termoUC := usecase.NewTermoUseCase(v8Client, highConsultClient)
	simulacaoUC := usecase.NewSimulacaoUseCase(v8Client)
	propostaUC := usecase.NewPropostaUseCase(v8Client, highConsultClient, viaCepClient)

	// 3. Handlers
	healthHandler := handlers.NewHealthHandler(serviceName)
	cpfHandler := handlers.NewCpfHandler(cpfUC)
	pixHandler := handlers.NewPixHandler()
	termoHandler := handlers.NewTermoHandler(termoUC)
	simulacaoHandler := handlers.NewSimulacaoHandler(simulacaoUC)
	propostaHandler := handlers.NewPropostaHandler(propostaUC)

	// 4. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/cpf/validar", cpfHandler.HandleValidar)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/cpf/validar", cpfHandler.HandleValidar)
		r.Post("/cpf/consultar", cpfHandler.HandleConsultar)
		r.Post("/pix/validar", pixHandler.HandleValidar)
		r.Post("/termo/criar", termoHandler.HandleCriar)
		r.Get("/termo/{id}", termoHandler.HandleObter)
		r.Post("/termo/aceitar", termoHandler.HandleAceitar)
		r.Post("/termo/autorizar", termoHandler.HandleAutorizar)
		r.Post("/simulacao/gerar", simulacaoHandler.HandleGerar)
		r.Post("/proposta/criar", propostaHandler.HandleCriar)
		r.Get("/operacao/{id}", propostaHandler.HandleConsultarOperacao)
	})

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("Servidor rodando em http://%s", addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
