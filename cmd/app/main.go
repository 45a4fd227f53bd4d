package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripcraft/cmd/fx/account_fx"
	"tripcraft/cmd/fx/directory_fx"
	"tripcraft/cmd/fx/itinerary_fx"
	"tripcraft/cmd/fx/providers_fx"
	"tripcraft/internal/api/controllers"
	"tripcraft/pkg/memcache"
	"tripcraft/pkg/middleware"
)

const (
	anonymousRateLimit  = 30
	anonymousRateWindow = time.Hour
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables directly")
	}

	app := fx.New(
		providers_fx.Module,
		account_fx.Module,
		itinerary_fx.Module,
		directory_fx.Module,

		fx.Provide(provideRateCounters),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func provideRateCounters() memcache.RateCounterStore {
	return memcache.NewRateCounters()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "5000"
			}
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	directoryController *controllers.DirectoryController,
	accountController *controllers.AccountController,
	rateCounters memcache.RateCounterStore,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, directoryController, accountController, rateCounters)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	directoryController *controllers.DirectoryController,
	accountController *controllers.AccountController,
	rateCounters memcache.RateCounterStore,
) {

	r.POST("/generate",
		middleware.OptionalJWTMiddleware(),
		middleware.RateLimitMiddleware(rateCounters, anonymousRateLimit, anonymousRateWindow),
		itineraryController.Generate)

	api := r.Group("/api")
	api.GET("/countries", directoryController.GetCountries)
	api.GET("/cities/:country", directoryController.GetCities)
	api.GET("/trips", middleware.JWTAuthMiddleware(), itineraryController.ListTrips)

	auth := r.Group("/auth")
	auth.POST("/register", accountController.Register)
	auth.POST("/login", accountController.Login)
	auth.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"app":       "TripCraft",
			"version":   "2.0",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
}
