// Command lambda runs one pipeline pass per invocation, for an
// EventBridge schedule.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/chris/mainsbot/config"
	"github.com/chris/mainsbot/internal/bot"
)

type Response struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func Handler(ctx context.Context, event interface{}) (Response, error) {
	log.Println("lambda: starting pass")

	cfg := config.Load()
	if err := checkDurableMarker(cfg, os.TempDir()); err != nil {
		log.Printf("lambda: %v", err)
		return Response{StatusCode: 500, Message: err.Error()}, err
	}

	b, closeFn, err := bot.Build(cfg)
	if err != nil {
		log.Printf("lambda: building bot: %v", err)
		return Response{StatusCode: 500, Message: err.Error()}, err
	}
	defer closeFn()

	b.Run(ctx)
	return Response{StatusCode: 200, Message: "ok"}, nil
}

// checkDurableMarker rejects marker locations that do not outlive an
// execution environment. The task directory is read-only and tmpDir is
// wiped on every cold start, so a marker in either would resend the
// welcome. Use an absolute path on a mounted volume (EFS).
func checkDurableMarker(cfg *config.Config, tmpDir string) error {
	var path, key string
	switch cfg.MarkerStore {
	case "file":
		path, key = cfg.MarkerPath, "MARKER_PATH"
	case "sqlite":
		path, key = cfg.DatabasePath, "DATABASE_PATH"
	default:
		return fmt.Errorf("unknown marker store: %s", cfg.MarkerStore)
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s %q must be an absolute path on a mounted volume", key, path)
	}
	if within(path, tmpDir) {
		return fmt.Errorf("%s %q is under %s, which does not survive cold starts", key, path, tmpDir)
	}
	return nil
}

func within(path, dir string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func main() {
	lambda.Start(Handler)
}
