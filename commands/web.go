package commands

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/programmingwithjerry/AirBnB-clone-v4/controllers"
	"github.com/programmingwithjerry/AirBnB-clone-v4/database"
	"github.com/programmingwithjerry/AirBnB-clone-v4/web"
)

var apiURL string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Run the HBNB page server",
	Long: `Serve the HBNB page at /0-hbnb/ and its assets under /static.

The page script calls the REST API at --api-url.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWeb(cmd.Context())
	},
}

func init() {
	webCmd.Flags().StringVar(&apiURL, "api-url", "", "REST API base URL (defaults to http://HBNB_API_HOST:HBNB_API_PORT/api/v1)")
	rootCmd.AddCommand(webCmd)
}

func runWeb(ctx context.Context) error {
	store, err := database.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	tmpl, err := web.Templates()
	if err != nil {
		return err
	}

	base := apiURL
	if base == "" {
		base = fmt.Sprintf("http://%s:%s%s", cfg.APIHost, cfg.APIPort, controllers.APIPrefix)
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", web.Static())
	controllers.RegisterWeb(r, store, base)

	return serve(ctx, listenAddr(cfg.APIHost, cfg.WebPort), r)
}
