package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gamecollector/backend/internal/service"
)

// Services groups the rule services exposed over HTTP.
type Services struct {
	GameSystems *service.GameSystemService
	VideoGames  *service.VideoGameService
}

// NewRouter builds the gin engine with every route of the API.
func NewRouter(svcs Services, log logrus.FieldLogger) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(log), Recovery(log))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/healthcheck", Healthcheck)

	gameSystems := NewGameSystemHandler(svcs.GameSystems, log)
	videoGames := NewVideoGameHandler(svcs.VideoGames, log)

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		gameSystemRoutes := apiV1.Group("/gamesystems")
		{
			gameSystemRoutes.GET("", gameSystems.GetGameSystems)
			gameSystemRoutes.GET("/:id", gameSystems.GetGameSystemByID)
			gameSystemRoutes.POST("", gameSystems.CreateGameSystem)
			gameSystemRoutes.PUT("/:id", gameSystems.UpdateGameSystem)
			gameSystemRoutes.DELETE("/:id", gameSystems.DeleteGameSystem)
		}

		videoGameRoutes := apiV1.Group("/videogames")
		{
			videoGameRoutes.GET("", videoGames.GetVideoGames)
			videoGameRoutes.GET("/:id", videoGames.GetVideoGameByID)
			videoGameRoutes.POST("", videoGames.CreateVideoGame)
			videoGameRoutes.PUT("/:id", videoGames.UpdateVideoGame)
			videoGameRoutes.DELETE("/:id", videoGames.DeleteVideoGame)
		}
	}

	return router
}
