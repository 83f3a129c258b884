package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/programmingwithjerry/AirBnB-clone-v4/database"
	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
	"github.com/programmingwithjerry/AirBnB-clone-v4/services"
)

var jsonOutput bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the number of objects per type",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := database.New(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		sess, err := store.Open(ctx)
		if err != nil {
			return err
		}
		defer sess.Close()

		counts, err := services.NewStatsService(nil, 0).Counts(ctx, sess)
		if err != nil {
			return err
		}
		return printStats(cmd.OutOrStdout(), counts, jsonOutput)
	},
}

func init() {
	statsCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.AddCommand(statsCmd)
}

func printStats(out io.Writer, counts map[string]int64, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(counts)
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tCOUNT")
	for _, kind := range models.Kinds {
		fmt.Fprintf(w, "%s\t%d\n", kind.Plural(), counts[kind.Plural()])
	}
	return w.Flush()
}
