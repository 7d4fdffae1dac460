package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"moviehub/pkg/auth"
	"moviehub/pkg/config"
	"moviehub/pkg/database"
	"moviehub/pkg/logger"
	"moviehub/pkg/queue"
	"moviehub/pkg/redis"
	"moviehub/pkg/storage"
	ctl "moviehub/service-api/internal/controller"
	authRepo "moviehub/service-api/internal/repository/auth"
	countryRepo "moviehub/service-api/internal/repository/country"
	genreRepo "moviehub/service-api/internal/repository/genre"
	movieRepo "moviehub/service-api/internal/repository/movie"
	movieurlRepo "moviehub/service-api/internal/repository/movieurl"
	reactionRepo "moviehub/service-api/internal/repository/reaction"
	userRepo "moviehub/service-api/internal/repository/user"
	authService "moviehub/service-api/internal/service/auth"
	countryService "moviehub/service-api/internal/service/country"
	genreService "moviehub/service-api/internal/service/genre"
	movieService "moviehub/service-api/internal/service/movie"
	movieurlService "moviehub/service-api/internal/service/movieurl"
	userService "moviehub/service-api/internal/service/user"
)

type appServer struct {
	config      *config.Config
	controller  ctl.ControllerProvider
	jwtManager  *auth.JWTManager
	authService authService.Service
}

// NewAppServer wires the database, redis, broker, storage and the full
// repository/service/controller stack.
func NewAppServer(cfg *config.Config) *appServer {
	db, err := database.NewPgDB(cfg)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		logger.Fatalf("failed to initialize redis: %v", err)
	}

	storageProvider, err := storage.NewStorageProvider(context.Background(), &cfg.Storage)
	if err != nil {
		logger.Fatalf("failed to initialize storage provider: %v", err)
	}

	publisher := queue.NewPublisher(cfg.AMQP.URL)
	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)

	// initialize repositories
	userRepository := userRepo.NewRepository(db)
	authRepository := authRepo.NewRepository(db)
	genreRepository := genreRepo.NewRepository(db)
	countryRepository := countryRepo.NewRepository(db)
	movieRepository := movieRepo.NewRepository(db)
	movieURLRepository := movieurlRepo.NewRepository(db)
	reactionRepository := reactionRepo.NewRepository(db)

	// initialize services
	userSvc := userService.NewUserService(cfg, userRepository, authRepository, publisher)
	authSvc := authService.NewAuthService(cfg, jwtManager, userSvc, authRepository, redisClient)
	genreSvc := genreService.NewGenreService(genreRepository)
	countrySvc := countryService.NewCountryService(countryRepository)
	movieSvc := movieService.NewMovieService(movieRepository, genreRepository, countryRepository,
		reactionRepository, storageProvider, publisher)
	movieURLSvc := movieurlService.NewMovieURLService(movieRepository, movieURLRepository)

	controller := ctl.NewController(userSvc, authSvc, genreSvc, countrySvc, movieSvc, movieURLSvc)

	return &appServer{
		config:      cfg,
		controller:  controller,
		jwtManager:  jwtManager,
		authService: authSvc,
	}
}

func (a *appServer) Serve() {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.config.Port),
		Handler: a.RegisterHandlers(),
	}

	// serve the server
	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed to start: %v", err)
		}
	}()

	logger.Infof("server started on port %s", a.config.Port)

	a.gracefulShutdown(server)

	logger.Info("server shutdown complete")
}

func (a *appServer) gracefulShutdown(server *http.Server) {
	ctx, stopCtx := context.WithCancel(context.Background())

	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP) // wait for the sigterm
		<-signals

		// we received an os signal, shut down.
		err := server.Shutdown(ctx)
		if err != nil {
			logger.Error(err, "server shutdown error")
		} else {
			logger.Info("server graceful shutdown")
		}

		stopCtx()
	}()

	<-ctx.Done()
}
