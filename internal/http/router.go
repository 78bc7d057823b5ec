package httpx

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Nakulpanchal-gamer/KubereshwarBackend/internal/http/handlers"
	"github.com/Nakulpanchal-gamer/KubereshwarBackend/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, eh *handlers.EnquiryHandlers, ch *handlers.CatalogHandlers, jwtmw *middleware.AuthMW, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		corsCfg.AllowOrigins = allowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := r.Group("/api")

	admin := api.Group("/admin")
	admin.POST("/otp/request", ah.RequestOTP)
	admin.POST("/otp/verify", ah.VerifyOTP)
	admin.POST("/login", ah.Login)
	admin.POST("/reset-password", ah.ResetPassword)

	api.POST("/enquiries", eh.Create)
	api.GET("/products", ch.ListProducts)
	api.GET("/categories", ch.ListCategories)

	protected := api.Group("/enquiries").Use(jwtmw.WithJWT())
	protected.GET("", eh.List)
	protected.PUT("/:id", eh.Update)
	protected.DELETE("/:id", eh.Delete)

	return r
}
