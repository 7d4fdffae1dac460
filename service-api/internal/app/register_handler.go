package app

import (
	"moviehub/pkg/auth"
	"moviehub/pkg/logger"
	"moviehub/pkg/model"
	mdw "moviehub/service-api/internal/app/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (a *appServer) RegisterHandlers() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	handler := gin.New()

	logger.Debugf("allowing CORS origins: %v", a.config.CORS.AllowedOrigins)

	corsConfig := cors.Config{
		AllowOrigins:     a.config.CORS.AllowedOrigins,
		AllowMethods:     a.config.CORS.AllowedMethods,
		AllowHeaders:     a.config.CORS.AllowedHeaders,
		AllowCredentials: true,
	}
	handler.Use(cors.New(corsConfig))
	handler.Use(gin.Logger())
	handler.Use(gin.Recovery())

	authMiddleware := auth.AuthMiddleware(a.jwtManager)
	adminMiddleware := auth.RequireRole(model.RoleAdmin)
	blacklistGuard := mdw.BlacklistGuard(a.authService)

	api := handler.Group("/api/v1")

	api.GET("/health", a.controller.HealthCheck)

	// account routes
	{
		api.POST("/register", a.controller.Register)
		api.POST("/login", a.controller.Login)
		api.POST("/verify/resend", a.controller.ResendVerification)
		api.GET("/verify/:uid/:token", a.controller.Verify)
	}

	// authenticated account routes
	account := api.Group("")
	account.Use(authMiddleware, blacklistGuard)
	{
		account.POST("/logout", a.controller.Logout)
		account.POST("/password/change", a.controller.ChangePassword)
	}

	// public catalog reads
	{
		api.GET("/genre", a.controller.ListGenres)
		api.GET("/genre/:slug", a.controller.GetGenre)
		api.GET("/country", a.controller.ListCountries)
		api.GET("/country/:slug", a.controller.GetCountry)
		api.GET("/movie", a.controller.ListMovies)
		api.GET("/movie/:slug", a.controller.GetMovie)
		api.GET("/movie/:slug/view", a.controller.ViewMovie)
		api.GET("/movie/:slug/url", a.controller.ListMovieURLs)
	}

	// authenticated reactions
	reactions := api.Group("")
	reactions.Use(authMiddleware, blacklistGuard)
	{
		reactions.POST("/movie/:slug/like", a.controller.LikeMovie)
		reactions.POST("/movie/:slug/dislike", a.controller.DislikeMovie)
	}

	// admin-only catalog writes
	admin := api.Group("")
	admin.Use(authMiddleware, blacklistGuard, adminMiddleware)
	{
		admin.POST("/genre", a.controller.CreateGenre)
		admin.PUT("/genre/:slug", a.controller.UpdateGenre)
		admin.DELETE("/genre/:slug", a.controller.DeleteGenre)

		admin.POST("/country", a.controller.CreateCountry)
		admin.PUT("/country/:slug", a.controller.UpdateCountry)
		admin.DELETE("/country/:slug", a.controller.DeleteCountry)

		admin.POST("/movie", a.controller.CreateMovie)
		admin.PUT("/movie/:slug", a.controller.UpdateMovie)
		admin.DELETE("/movie/:slug", a.controller.DeleteMovie)

		admin.POST("/movie/:slug/url", a.controller.CreateMovieURL)
		admin.PUT("/movie/:slug/url/:id", a.controller.UpdateMovieURL)
		admin.DELETE("/movie/:slug/url/:id", a.controller.DeleteMovieURL)
	}

	return handler
}
