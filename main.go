package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/narbehner/Movie-Watchlist/config"
	"github.com/narbehner/Movie-Watchlist/controllers"
	"github.com/narbehner/Movie-Watchlist/data_access"
	"github.com/narbehner/Movie-Watchlist/helper"
	"github.com/narbehner/Movie-Watchlist/middleware"
	"github.com/narbehner/Movie-Watchlist/services"
)

func setupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug(".env file not found")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	log.WithField("env", cfg.Env).Info("Configuration loaded")

	// Initialize MongoDB connection
	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer mongodb.Close(context.Background())

	// Initialize repositories
	userRepo := data_access.NewUserRepository(mongodb)
	movieRepo := data_access.NewMovieRepository(mongodb)
	omdbClient := data_access.NewOMDBClient(cfg.MovieAPIKey, cfg.MovieAPIBaseURL)

	// Set JWT secret for middleware
	middleware.SetJWTSecret(cfg.JWTSecret)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, log)
	watchlistService := services.NewWatchlistService(movieRepo, userRepo, omdbClient, log)

	if cfg.SeedCSV != "" {
		seedMovies(log, movieRepo, cfg.SeedCSV)
	}

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	watchlistController := controllers.NewWatchlistController(watchlistService)

	// Setup Gin router
	r := gin.Default()
	r.Use(setupCORS())

	// Health check endpoint
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Public routes
	api := r.Group("/api")
	{
		api.POST("/register", authController.Register)
		api.POST("/login", authController.Login)
		api.POST("/logout", authController.Logout)
		api.GET("/toggle-theme", controllers.ToggleTheme)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/movies", watchlistController.ListMovies)
			protected.POST("/movies", watchlistController.AddMovie)
			protected.GET("/movies/lookup", watchlistController.LookupMovie)
			protected.GET("/movies/:id", watchlistController.GetMovie)
			protected.POST("/movies/:id/rate", watchlistController.RateMovie)
			protected.POST("/movies/:id/watch", watchlistController.WatchToday)
			protected.PATCH("/movies/:id", watchlistController.EditMovie)
		}
	}

	log.WithField("port", cfg.Port).Info("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}

// seedMovies inserts the CSV movies that are not already present,
// matching on title and year. Seeded movies belong to no watchlist
// until a user adds them; they only show up through direct fetches.
func seedMovies(log *logrus.Logger, movieRepo *data_access.MovieRepository, path string) {
	movies, skipped, err := helper.LoadSeedMovies(path)
	if err != nil {
		log.WithError(err).Warn("Failed to load seed CSV")
		return
	}
	for _, skip := range skipped {
		log.WithError(skip).Warn("Skipping seed row")
	}

	ctx := context.Background()
	inserted := 0
	for _, movie := range movies {
		exists, err := movieRepo.ExistsByTitleYear(ctx, movie.Title, movie.Year)
		if err != nil {
			log.WithError(err).WithField("title", movie.Title).Warn("Failed to check seed movie")
			continue
		}
		if exists {
			continue
		}
		if err := movieRepo.InsertMovie(ctx, movie); err != nil {
			log.WithError(err).WithField("title", movie.Title).Warn("Failed to seed movie")
			continue
		}
		inserted++
	}
	log.WithField("count", inserted).Info("Seeded movies")
}
