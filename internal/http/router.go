package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travelpal/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	healthH *HealthHandler,
	waitlistH *WaitlistHandler,
	chatH *ChatHandler,
	itineraryH *ItineraryHandler,
	weatherH *WeatherHandler,
	placesH *PlacesHandler,
	userH *UserHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware(), optionalAuthMiddleware(jwtSvc))

	r.GET("/health", healthH.Check)

	api := r.Group("/api")

	api.POST("/waitlist", waitlistH.Join)

	api.POST("/chat", chatH.CreateChat)
	api.GET("/chat/:id", chatH.GetChat)
	api.POST("/chat/:id/message", chatH.PostMessage)

	api.POST("/itinerary", itineraryH.Create)
	api.GET("/itinerary/:id", itineraryH.Get)
	api.POST("/itinerary/generate", itineraryH.Generate)

	api.GET("/weather", weatherH.Forecast)
	api.GET("/places", placesH.Search)

	api.POST("/users", userH.Register)
	api.POST("/users/login", userH.Login)

	return r
}
