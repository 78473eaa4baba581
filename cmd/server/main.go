package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/curlyfettuccine-alt/sbx-fantasy/internal/config"
	"github.com/curlyfettuccine-alt/sbx-fantasy/internal/database"
	"github.com/curlyfettuccine-alt/sbx-fantasy/internal/handlers"
	"github.com/curlyfettuccine-alt/sbx-fantasy/internal/middleware"
	"github.com/curlyfettuccine-alt/sbx-fantasy/internal/services"
	"github.com/curlyfettuccine-alt/sbx-fantasy/pkg/logger"

	_ "github.com/curlyfettuccine-alt/sbx-fantasy/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           SBX Fantasy API
// @version         1.0
// @description     Fantasy league backend for snowboard cross racing
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config: ", err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output); err != nil {
		logger.Fatal("failed to init logger: ", err)
	}

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	authService := services.NewAuthService(db, cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	if err := authService.EnsureAdmin(cfg.Auth.AdminEmail, cfg.Auth.AdminPassword, cfg.Auth.AdminName); err != nil {
		logger.Fatal("failed to bootstrap admin: ", err)
	}

	scoringService := services.NewScoringService(cfg.Scoring.Table())
	athleteService := services.NewAthleteService(db)
	raceService := services.NewRaceService(db)
	resultService := services.NewResultService(db, scoringService)
	standingsService := services.NewStandingsService(db)

	authHandler := handlers.NewAuthHandler(authService)
	athleteHandler := handlers.NewAthleteHandler(athleteService)
	raceHandler := handlers.NewRaceHandler(raceService)
	resultHandler := handlers.NewResultHandler(resultService)
	standingsHandler := handlers.NewStandingsHandler(standingsService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	r.GET("/athletes", athleteHandler.ListAthletes)
	r.GET("/races", raceHandler.ListRaces)
	r.GET("/standings", standingsHandler.GetStandings)

	admin := r.Group("/")
	admin.Use(middleware.JWTAuth(authService), middleware.RequireAdmin())
	{
		admin.POST("/athletes", athleteHandler.CreateAthlete)
		admin.POST("/races", raceHandler.CreateRace)
		admin.POST("/results", resultHandler.SubmitResults)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("starting server on ", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatal("failed to run server: ", err)
	}
}
