package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"codecraft-api/catalog"
	"codecraft-api/config"
	"codecraft-api/models"
	"codecraft-api/providers/gemini"
	"codecraft-api/services"
	"codecraft-api/storage"
)

var (
	chatRequestsCounter prometheus.Counter
	chatFailuresCounter prometheus.Counter
	commentsCounter     prometheus.Counter
	ratingsCounter      prometheus.Counter
)

func init() {
	chatRequestsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chat_requests_total",
		Help: "Total number of chat messages proxied to the generative-text service.",
	})
	chatFailuresCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chat_failures_total",
		Help: "Total number of failed generative-text calls.",
	})
	commentsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "comments_added_total",
		Help: "Total number of comments stored.",
	})
	ratingsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ratings_added_total",
		Help: "Total number of ratings stored.",
	})
	prometheus.MustRegister(chatRequestsCounter, chatFailuresCounter, commentsCounter, ratingsCounter)
}

func apiKeyAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.APISecretKey == "" {
			c.Next()
			return
		}
		apiKey := c.GetHeader("X-API-KEY")
		if apiKey != cfg.APISecretKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid API Key"})
			return
		}
		c.Next()
	}
}

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	// Setup Database Connection
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		logging.Fatal("Failed to connect to database", zap.Error(err))
	}
	logging.Info("Successfully connected to feedback database.")

	logging.Info("Running database auto-migration...")
	db.AutoMigrate(&models.StorageEntry{})

	// Setup Services
	store := storage.NewGormStore(db)
	feedbackSvc := services.NewFeedbackService(store, logging)
	geminiFetcher := gemini.NewFetcher(cfg, logging)
	chatSvc := services.NewChatService(geminiFetcher, logging)

	// Setup Router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(apiKeyAuthMiddleware(cfg))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Routes
	setupArticleRoutes(router, feedbackSvc, logging)
	setupCategoryRoutes(router, logging)
	setupChatRoutes(router, chatSvc, logging)
	setupTextRoutes(router, logging)

	// Setup Cron (scheduled feedback backup)
	if cfg.BackupEnabled {
		s3Client, err := storage.NewS3Client(cfg)
		if err != nil {
			logging.Fatal("S3 client creation failed", zap.Error(err))
		}
		backupSvc := services.NewBackupService(cfg, s3Client, store, logging)

		cronScheduler := cron.New()
		cronScheduler.AddFunc(cfg.BackupSchedule, func() {
			logging.Info("Running scheduled feedback backup...")
			link, err := backupSvc.Run(context.Background())
			if err != nil {
				logging.Error("Scheduled backup failed", zap.Error(err))
			} else {
				logging.Info("Scheduled backup completed", zap.String("s3_link", link))
			}
		})
		cronScheduler.Start()
	}

	logging.Info("Starting server", zap.String("port", cfg.HTTPPort))
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logging.Fatal("Failed to run server", zap.Error(err))
	}
}

func setupArticleRoutes(router *gin.Engine, feedback *services.FeedbackService, log *zap.Logger) {
	rg := router.Group("/articles")

	// GET - Gesamte Artikelsammlung in Originalreihenfolge
	rg.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, catalog.All())
	})

	// GET - Substring-Suche über Titel, Excerpt und Tags. Eine leere Query
	// liefert bewusst alle Artikel (jeder String enthält den Leerstring).
	rg.GET("/search", func(c *gin.Context) {
		query := c.Query("q")
		results := catalog.Search(query)
		c.JSON(http.StatusOK, gin.H{
			"query":   query,
			"count":   len(results),
			"results": results,
		})
	})

	rg.GET("/:id", func(c *gin.Context) {
		article, ok := catalog.GetByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artikel tidak ditemukan"})
			return
		}
		c.JSON(http.StatusOK, article)
	})

	rg.GET("/:id/comments", func(c *gin.Context) {
		id := c.Param("id")
		if _, ok := catalog.GetByID(id); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artikel tidak ditemukan"})
			return
		}
		comments, err := feedback.Comments(id)
		if err != nil {
			log.Error("Failed to load comments", zap.String("article_id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, comments)
	})

	rg.POST("/:id/comments", func(c *gin.Context) {
		id := c.Param("id")
		if _, ok := catalog.GetByID(id); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artikel tidak ditemukan"})
			return
		}
		var req struct {
			Author  string `json:"author"`
			Content string `json:"content"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		comment, err := feedback.AddComment(id, req.Author, req.Content)
		if err != nil {
			if errors.Is(err, services.ErrCommentInvalid) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			log.Error("Failed to store comment", zap.String("article_id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		commentsCounter.Inc()
		c.JSON(http.StatusCreated, comment)
	})

	rg.GET("/:id/ratings", func(c *gin.Context) {
		id := c.Param("id")
		if _, ok := catalog.GetByID(id); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artikel tidak ditemukan"})
			return
		}
		ratings, err := feedback.Ratings(id)
		if err != nil {
			log.Error("Failed to load ratings", zap.String("article_id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		average, err := feedback.AverageRating(id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"ratings": ratings,
			"average": average,
			"count":   len(ratings),
		})
	})

	rg.POST("/:id/ratings", func(c *gin.Context) {
		id := c.Param("id")
		if _, ok := catalog.GetByID(id); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artikel tidak ditemukan"})
			return
		}
		var req struct {
			Author  string `json:"author"`
			Rating  int    `json:"rating"`
			Comment string `json:"comment"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		rating, err := feedback.AddRating(id, req.Author, req.Rating, req.Comment)
		if err != nil {
			if errors.Is(err, services.ErrRatingInvalid) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			log.Error("Failed to store rating", zap.String("article_id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		ratingsCounter.Inc()
		c.JSON(http.StatusCreated, rating)
	})
}

func setupCategoryRoutes(router *gin.Engine, log *zap.Logger) {
	rg := router.Group("/categories")

	// GET - Deklarierte Kategorien mit Slug und Artikelanzahl
	rg.GET("/", func(c *gin.Context) {
		type categoryInfo struct {
			Name  string `json:"name"`
			Slug  string `json:"slug"`
			Count int    `json:"count"`
		}
		infos := make([]categoryInfo, 0, len(catalog.Categories))
		for _, name := range catalog.Categories {
			slug, _ := catalog.SlugForCategory(name)
			infos = append(infos, categoryInfo{
				Name:  name,
				Slug:  slug,
				Count: len(catalog.GetByCategory(name)),
			})
		}
		c.JSON(http.StatusOK, infos)
	})

	rg.GET("/:slug", func(c *gin.Context) {
		slug := c.Param("slug")
		label, ok := catalog.CategoryBySlug(slug)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Kategori tidak ditemukan"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"category": label,
			"slug":     slug,
			"articles": catalog.GetByCategory(label),
		})
	})
}

func setupChatRoutes(router *gin.Engine, chat *services.ChatService, log *zap.Logger) {
	rg := router.Group("/chat")

	// POST - Eine Nutzernachricht an den Generative-Text-Dienst weiterreichen.
	// Zustandslos: kein Verlauf, ein Versuch, kein Retry.
	rg.POST("/", func(c *gin.Context) {
		var req struct {
			Message string `json:"message"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		chatRequestsCounter.Inc()
		reply, err := chat.Send(c.Request.Context(), req.Message)
		if err != nil {
			if errors.Is(err, services.ErrEmptyMessage) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			chatFailuresCounter.Inc()
			log.Error("Chat request failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": services.FallbackReply})
			return
		}
		c.JSON(http.StatusOK, reply)
	})
}

// setupTextRoutes konfiguriert Text-bezogene API-Routen (Normalisierung)
func setupTextRoutes(router *gin.Engine, log *zap.Logger) {
	contentNormalizer := services.NewContentNormalizer(log)
	responseNormalizer := services.NewResponseNormalizer(log)
	rg := router.Group("/text")

	// POST - Markdown zu Klartext. Variant "response" entfernt zusätzlich
	// übriggebliebene Backticks, "content" (Default) lässt sie stehen.
	rg.POST("/normalize", func(c *gin.Context) {
		var req struct {
			Text    string `json:"text" binding:"required"`
			Variant string `json:"variant"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. 'text' field is required."})
			return
		}

		normalizer := contentNormalizer
		if req.Variant == "response" {
			normalizer = responseNormalizer
		}
		cleaned := normalizer.Clean(req.Text)

		c.JSON(http.StatusOK, gin.H{
			"text": cleaned,
			"statistics": gin.H{
				"original_length": len(req.Text),
				"cleaned_length":  len(cleaned),
			},
		})
	})
}
