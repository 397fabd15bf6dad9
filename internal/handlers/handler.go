package handlers

import (
	"time"

	"blog_api/internal/logger"
	"blog_api/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds the HTTP-layer switches read at startup.
type Config struct {
	// BootstrapMode leaves POST /user and PUT /user/:public_id unauthenticated
	// so the first admin can be created. When false both require an admin token.
	BootstrapMode bool
	// FeedInterval is the default push period of the post feed websocket.
	FeedInterval time.Duration
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	cfg      Config
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, cfg Config) *Handler {
	if cfg.FeedInterval <= 0 || cfg.FeedInterval > maxInterval {
		cfg.FeedInterval = defaultInterval
	}
	return &Handler{services: services, log: log, cfg: cfg}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	// logger outermost so panicking requests are still logged
	router.Use(h.requestLogger, gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", h.index)
	router.GET("/health", h.health)
	router.GET("/login", h.login)

	h.registerUserRoutes(router)
	h.registerPostRoutes(router)

	return router
}

func (h *Handler) registerUserRoutes(r *gin.Engine) {
	users := r.Group("/user")
	{
		users.GET("", h.tokenMiddleware, h.listUsers)
		users.GET("/:public_id", h.tokenMiddleware, h.getUser)
		users.POST("", h.bootstrapChain(h.createUser)...)
		users.PUT("/:public_id", h.bootstrapChain(h.promoteUser)...)
		users.DELETE("/:public_id", h.tokenMiddleware, h.deleteUser)
	}
}

func (h *Handler) registerPostRoutes(r *gin.Engine) {
	posts := r.Group("/post")
	{
		posts.GET("", h.listPosts)
		posts.GET("/ws", h.postFeed)
		posts.GET("/own", h.tokenMiddleware, h.listOwnPosts)
		posts.GET("/:id", h.tokenMiddleware, h.getPost)
		// Body example: {"title":"Hello","body":"First post"}
		posts.POST("", h.tokenMiddleware, h.createPost)
		posts.PUT("/:id", h.tokenMiddleware, h.updatePost)
		posts.DELETE("/:id", h.tokenMiddleware, h.deletePost)
	}
}

// bootstrapChain returns the handler alone in bootstrap mode, otherwise
// preceded by the token middleware.
func (h *Handler) bootstrapChain(handler gin.HandlerFunc) []gin.HandlerFunc {
	if h.cfg.BootstrapMode {
		return []gin.HandlerFunc{handler}
	}
	return []gin.HandlerFunc{h.tokenMiddleware, handler}
}
