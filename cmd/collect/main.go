package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/LJTian/NewsPulse/internal/collector"
	"github.com/LJTian/NewsPulse/internal/config"
	"github.com/LJTian/NewsPulse/internal/logger"
	"github.com/LJTian/NewsPulse/internal/newsfeed"
	"github.com/LJTian/NewsPulse/internal/processor"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// 一个仅执行一次抓取的命令行入口：适合手动检查解析结果
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		query string
		cat   string
		id    int
	)

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Fetch headlines once and print them",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New("collect")
			if err := godotenv.Load(); err != nil {
				log.Debug("no .env loaded", slog.Any("err", err))
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			fetcher := collector.New(cfg.FetchMode, collector.Options{
				SourceURL: cfg.SourceURL,
				Origin:    cfg.BaseOrigin,
				MaxItems:  cfg.MaxItems,
				Timeout:   cfg.FetchTimeout,
				UserAgent: cfg.UserAgent,
			})
			feed := newsfeed.New(fetcher, processor.NewSimpleProcessor(), log, nil)

			if cmd.Flags().Changed("id") {
				printDetail(cmd.OutOrStdout(), feed.Detail(id))
				return nil
			}
			return printList(cmd.OutOrStdout(), feed.List(query, cat))
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive search text")
	cmd.Flags().StringVarP(&cat, "category", "c", "All", "category filter")
	cmd.Flags().IntVar(&id, "id", 0, "print a single item by position")
	return cmd
}

func printList(w io.Writer, list []processor.News) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tTITLE\tURL")
	for _, n := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", n.ID, n.Category, n.Title, n.URL)
	}
	return tw.Flush()
}

func printDetail(w io.Writer, n processor.News) {
	fmt.Fprintf(w, "#%d [%s] %s\n%s\n%s\n", n.ID, n.Category, n.Title, n.Content, n.URL)
}
