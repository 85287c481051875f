package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"motionview/internal/config"
	"motionview/internal/gallery"
	"motionview/internal/query"
	"motionview/internal/search"
	"motionview/pkg/log"
)

var (
	queryInput query.Input
	queryJSON  bool
)

var queryCommand = &cobra.Command{
	Use:   "query",
	Short: "Run one search against the backend and print the events",
	Example: `  motionview query --quick today --keywords car
  motionview query --quick custom --date 2024-01-15
  motionview query --start 2024-01-15T08:00 --end 2024-01-15T18:00 --json`,
	Run: func(cmd *cobra.Command, args []string) {
		log.InitLogTo(os.Stderr, logLevel)
		if err := runQuery(cmd.Context()); err != nil {
			logrus.Fatal(err)
		}
	},
}

func init() {
	queryCommand.Flags().StringVarP(&queryInput.Keywords, "keywords", "k", "", "Free-text keywords")
	queryCommand.Flags().StringVarP(&queryInput.DateMode, "quick", "q", "", "Quick date: today, yesterday or custom")
	queryCommand.Flags().StringVarP(&queryInput.Date, "date", "d", "", "Date for --quick custom (YYYY-MM-DD)")
	queryCommand.Flags().StringVar(&queryInput.Start, "start", "", "Range start (YYYY-MM-DDTHH:MM), structured mode")
	queryCommand.Flags().StringVar(&queryInput.End, "end", "", "Range end (YYYY-MM-DDTHH:MM), structured mode")
	queryCommand.Flags().BoolVar(&queryJSON, "json", false, "Print raw events as JSON")
}

func runQuery(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	conf, err := config.InitConfig(configFile)
	if err != nil {
		return err
	}

	mode := query.Mode(conf.Viewer.QueryMode)
	if queryInput.Start != "" || queryInput.End != "" {
		mode = query.ModeStructured
	}
	spec, err := query.NewBuilder(mode, nil).Build(queryInput)
	if errors.Is(err, query.ErrNoQuery) {
		return errors.New(gallery.MessagePrompt)
	}
	if err != nil {
		return err
	}
	logrus.Debugf("query: %s", spec)

	client := search.NewClient(conf.Backend.URL, conf.Backend.Timeout)
	res, err := client.Search(ctx, spec)
	if err != nil {
		return err
	}

	if queryJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Events)
	}

	if res.Empty() {
		fmt.Println(gallery.MessageEmpty)
		return nil
	}
	if res.TimeStart != "" {
		fmt.Printf("Range: %s .. %s\n\n", res.TimeStart, res.TimeEnd)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "START\tCAMERA\tSNAPSHOTS\tOBJECTS\tID")
	fmt.Fprintln(w, "-----\t------\t---------\t-------\t--")
	for i := range res.Events {
		ev := &res.Events[i]
		var objects []string
		for _, s := range gallery.Aggregate(ev.Objects) {
			objects = append(objects, s.Badge(gallery.BadgeMode(conf.Viewer.BadgeMode)))
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			ev.DisplayStart(), ev.CameraName, len(ev.Snapshots), strings.Join(objects, ", "), ev.ID)
	}
	return w.Flush()
}
