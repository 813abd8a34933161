// Command mazed serves generated mazes over HTTP.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"mazerunner/internal/config"
	"mazerunner/internal/mazeapi"
)

func main() {
	logger := log.New(os.Stderr, "[maze] ", log.LstdFlags)

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatalf("[ERROR] config: %v", err)
	}
	addr := flag.String("addr", cfg.HTTPAddr, "listen address")
	base := flag.String("base", "", "URL prefix for every route")
	storeSize := flag.Int("store", mazeapi.DefaultStoreSize, "generated mazes kept for lookup by id")
	release := flag.Bool("release", false, "run gin in release mode")
	flag.Parse()

	if *release {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Printf("[INFO] listening on %s", *addr)
	err = mazeapi.Run(mazeapi.Config{
		Addr:      *addr,
		BaseURL:   *base,
		LogOutput: logger.Writer(),
		StoreSize: *storeSize,
	})
	if err != nil {
		logger.Fatalf("[ERROR] %v", err)
	}
}
