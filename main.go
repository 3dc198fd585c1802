package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"receiptd/process/watcher"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var cfg Config

func main() {
	// Auto-load ./.env if present (no external dependency) before reading vars
	loadDotEnv()

	args := os.Args[1:]
	migrateOnly := len(args) > 0 && args[0] == "migrate"
	if migrateOnly {
		args = args[1:]
	}

	var err error
	cfg, err = parseConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if cfg.DebugMode {
		logrus.SetLevel(logrus.DebugLevel)
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Support a lightweight migrate command: `./receiptd migrate`
	// It runs AutoMigrate and exits. Useful for CI or manual DB setup.
	if migrateOnly {
		initDB(cfg)
		fmt.Println("migration completed")
		return
	}

	initDB(cfg)

	if cfg.WatchDir != "" && cfg.WatchDir == cfg.UploadDir {
		// stored copies would re-trigger the watcher forever
		logrus.Fatal("watch-dir must differ from upload-dir")
	}
	if cfg.WatchDir != "" {
		w := watcher.New(cfg.WatchDir, processDroppedFile)
		go func() {
			if err := w.Run(context.Background()); err != nil {
				logrus.WithError(err).Error("watch-folder ingestor stopped")
			}
		}()
	}

	r := gin.Default()
	r.Use(cors.Default())
	r.LoadHTMLGlob("templates/*")
	r.Static("/static", "./static")

	setupRoutes(r)

	addr := fmt.Sprintf("%s:%d", cfg.ListenHost, cfg.ListenPort)
	if err := r.Run(addr); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}

// loadDotEnv loads key=value pairs from a local .env file into the environment
// without overwriting variables that are already set. Lines starting with # are ignored.
func loadDotEnv() {
	path := ".env"
	if _, err := os.Stat(path); err != nil {
		return // no .env file
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// split on first '='
		if eq := strings.IndexByte(line, '='); eq > 0 {
			key := strings.TrimSpace(line[:eq])
			val := strings.TrimSpace(line[eq+1:])
			if _, exists := os.LookupEnv(key); !exists {
				_ = os.Setenv(key, val)
			}
		}
	}
}
