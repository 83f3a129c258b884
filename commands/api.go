package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/programmingwithjerry/AirBnB-clone-v4/controllers"
	"github.com/programmingwithjerry/AirBnB-clone-v4/database"
	"github.com/programmingwithjerry/AirBnB-clone-v4/docs"
	"github.com/programmingwithjerry/AirBnB-clone-v4/services"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Run the REST API server",
	Long: `Run the REST API under /api/v1 with its documentation under /apidocs.

Examples:
  hbnb api                      # listen on HBNB_API_HOST:HBNB_API_PORT
  hbnb api --port 8080          # override the port`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAPI(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(apiCmd)
}

func runAPI(ctx context.Context) error {
	store, err := database.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		return err
	}

	rdb, err := database.NewRedisClient(ctx, cfg)
	if err != nil {
		log.WithError(err).Warn("redis unavailable, stats are not cached")
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
	}
	stats := services.NewStatsService(rdb, cfg.StatsTTL)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	docs.SwaggerInfo.BasePath = controllers.APIPrefix
	r.GET("/apidocs/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
	controllers.RegisterAPI(r, store, stats)

	return serve(ctx, listenAddr(cfg.APIHost, cfg.APIPort), r)
}

// serve runs handler until ctx is done or the process is interrupted.
func serve(ctx context.Context, addr string, handler http.Handler) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{Addr: addr, Handler: handler}
	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
