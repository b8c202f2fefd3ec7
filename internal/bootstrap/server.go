package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/travelbooking/api"
	"github.com/Domenick1991/travelbooking/config"
	"github.com/Domenick1991/travelbooking/internal/service/travel"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Run starts the HTTP server and blocks until context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, travelSvc travel.TravelUseCase) error {
	router := gin.Default()

	group := router.Group("/travel")
	api.NewPackageHandler(travelSvc).Register(group)
	api.NewPassengerHandler(travelSvc).Register(group)

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/travel.swagger.json"),
		)))
	}

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
