package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/DivyomSharma/invoicer/config"
	"github.com/DivyomSharma/invoicer/handlers"
	"github.com/DivyomSharma/invoicer/invoice"
	"github.com/DivyomSharma/invoicer/middleware"
	"github.com/DivyomSharma/invoicer/models"
	"github.com/DivyomSharma/invoicer/render"
	"github.com/DivyomSharma/invoicer/storage"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Pick the draft store backend: redis when configured, sqlite/postgres
	// through gorm otherwise.
	var kv storage.KV
	if cfg.RedisAddr != "" {
		redisKV, err := storage.NewRedisKV(context.Background(), cfg.RedisAddr)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer redisKV.Close()
		kv = redisKV
	} else {
		db, err := config.InitDB(cfg)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		gormKV, err := storage.NewGormKV(db)
		if err != nil {
			log.Fatalf("Failed to initialize draft storage: %v", err)
		}
		kv = gormKV
	}

	drafts := storage.NewDraftStore(kv)

	// Seed the store from the saved draft, falling back to defaults.
	store := invoice.NewStore()
	if draft, ok := drafts.LoadDraft(context.Background()); ok {
		store.Replace(draft)
		log.Printf("Resumed draft %s", draft.InvoiceNumber)
	}

	// Every edit reschedules a debounced draft save.
	autosaver := storage.NewAutosaver(drafts, cfg.AutosaveDelay)
	defer autosaver.Close()
	store.OnChange(func(data models.InvoiceData) {
		autosaver.Notify(data)
	})

	// Setup router
	router := gin.Default()
	router.Use(middleware.CORS())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "invoicer-api",
		})
	})

	// API routes
	invoiceHandler := handlers.NewInvoiceHandler(store, drafts, render.NewPDFRenderer())
	api := router.Group("/api/v1")
	{
		api.GET("/invoice", invoiceHandler.GetInvoice)
		api.PATCH("/invoice", invoiceHandler.UpdateField)
		api.PATCH("/invoice/sender", invoiceHandler.UpdateSender)
		api.PATCH("/invoice/client", invoiceHandler.UpdateClient)
		api.POST("/invoice/items", invoiceHandler.AddLineItem)
		api.PATCH("/invoice/items/:id", invoiceHandler.UpdateLineItem)
		api.DELETE("/invoice/items/:id", invoiceHandler.RemoveLineItem)
		api.POST("/invoice/reset", invoiceHandler.ResetInvoice)
		api.GET("/invoice/export", invoiceHandler.ExportInvoice)
		api.POST("/invoice/import", invoiceHandler.ImportInvoice)
		api.POST("/invoice/logo", invoiceHandler.UploadLogo)
		api.DELETE("/invoice/logo", invoiceHandler.RemoveLogo)
		api.GET("/invoice/pdf", invoiceHandler.DownloadPDF)

		api.GET("/templates", invoiceHandler.ListTemplates)
		api.PUT("/templates/:name", invoiceHandler.SaveTemplate)
		api.POST("/templates/:name/apply", invoiceHandler.ApplyTemplate)
		api.DELETE("/templates/:name", invoiceHandler.DeleteTemplate)

		api.GET("/currencies", invoiceHandler.ListCurrencies)
		api.GET("/states", invoiceHandler.ListStates)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{Addr: ":" + port, Handler: router}
	go func() {
		log.Printf("Starting Invoicer API server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Flush any pending autosave before exiting.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down")
	autosaver.Flush()
	srv.Shutdown(context.Background())
}
