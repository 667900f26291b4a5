package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/chris/mainsbot/config"
	"github.com/chris/mainsbot/internal/bot"
	"github.com/chris/mainsbot/internal/scheduler"
)

var rootCmd = &cobra.Command{
	Use:           "mainsbot",
	Short:         "UPSC Mains daily answer-writing bot",
	Long:          "Posts one Mains question with a model answer, Monday to Thursday, linked to the day's current affairs.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runOnce,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one pass: welcome if needed, then generate and publish",
	RunE:  runOnce,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run passes on POST_CRON until interrupted",
	RunE:  serve,
}

var welcomeCmd = &cobra.Command{
	Use:   "welcome",
	Short: "Send the welcome message if it has not been sent",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withBot(config.Load(), func(b *bot.Bot) error {
			b.Welcome(cmd.Context())
			return nil
		})
	},
}

func main() {
	rootCmd.AddCommand(runCmd, serveCmd, welcomeCmd, serviceCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func withBot(cfg *config.Config, fn func(*bot.Bot) error) error {
	b, closeFn, err := bot.Build(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeFn(); err != nil {
			log.Printf("closing: %v", err)
		}
	}()
	return fn(b)
}

func runOnce(cmd *cobra.Command, args []string) error {
	return withBot(config.Load(), func(b *bot.Bot) error {
		b.Run(cmd.Context())
		return nil
	})
}

func serve(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return serveUntil(ctx, config.Load())
}

// serveUntil runs the scheduler from cfg until ctx is done.
func serveUntil(ctx context.Context, cfg *config.Config) error {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("loading timezone %q: %w", cfg.Timezone, err)
	}
	return withBot(cfg, func(b *bot.Bot) error {
		sched, err := scheduler.New(cfg.PostCron, loc, b)
		if err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()

		log.Println("mainsbot is running. Press Ctrl+C to exit.")
		<-ctx.Done()
		log.Println("shutting down.")
		return nil
	})
}
