package app

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Nakulpanchal-gamer/KubereshwarBackend/internal/config"
	httpx "github.com/Nakulpanchal-gamer/KubereshwarBackend/internal/http"
	"github.com/Nakulpanchal-gamer/KubereshwarBackend/internal/http/handlers"
	"github.com/Nakulpanchal-gamer/KubereshwarBackend/internal/http/middleware"
)

// Run wires the application together and serves HTTP until the process exits.
func Run(cfg *config.Config, log *logrus.Logger) error {
	gin.SetMode(cfg.GinMode)

	c, err := NewContainer(cfg, log)
	if err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(c.AuthSvc)
	enquiryH := handlers.NewEnquiryHandlers(c.EnquirySvc)
	catalogH := handlers.NewCatalogHandlers(c.ProductRepo, c.CategoryRepo)
	jwtMW := middleware.NewAuthMW(c.TokenSvc)

	r := httpx.BuildRouter(authH, enquiryH, catalogH, jwtMW, cfg.AllowedOrigins)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.WithField("addr", addr).Info("http server listening")
	return http.ListenAndServe(addr, r)
}
