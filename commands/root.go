package commands

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/programmingwithjerry/AirBnB-clone-v4/database"
)

var (
	// Global flags
	host string
	port string

	cfg *database.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hbnb",
	Short: "HBNB vacation rental catalog",
	Long: `HBNB serves a REST API over states, cities, users, places, reviews and
amenities, and an HTML page that searches places through it.

Storage is selected with HBNB_TYPE_STORAGE: "file" keeps everything in a JSON
file (HBNB_FILE_PATH), "db" uses PostgreSQL (DB_* variables).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configureLogging()
		loaded, err := database.LoadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "", "Listen host (defaults to HBNB_API_HOST)")
	rootCmd.PersistentFlags().StringVar(&port, "port", "", "Listen port (defaults to HBNB_API_PORT or HBNB_WEB_PORT)")
}

// configureLogging applies HBNB_LOG_LEVEL and HBNB_LOG_FORMAT.
func configureLogging() {
	if os.Getenv("HBNB_LOG_FORMAT") == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	level, err := log.ParseLevel(os.Getenv("HBNB_LOG_LEVEL"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

// listenAddr prefers the --host/--port flags over the configured values.
func listenAddr(defaultHost, defaultPort string) string {
	h, p := defaultHost, defaultPort
	if host != "" {
		h = host
	}
	if port != "" {
		p = port
	}
	return h + ":" + p
}
