package main

import (
	"log/slog"
	"sync"

	"github.com/hushlog/hush/config"
	"github.com/hushlog/hush/logger"
)

// runDemo installs the backend from configuration, emits a burst of records
// from several goroutines, and shuts down so everything is flushed before
// the process exits.
func runDemo(configPath string) error {
	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := cfg.Install()
	if err != nil {
		return err
	}

	log.Info("backend installed",
		logger.String("level", cfg.Logging.Level),
		logger.String("color", cfg.Logging.Color))

	log.Trace("tracing enabled check")
	log.Debugf("loaded %d whitelist entries", len(cfg.Modules.Whitelist))
	log.Warn("this is what a warning looks like")
	log.Error("and this is an error", logger.Int("code", 42))

	// The slog facade routes through the same worker
	slog.Info("via log/slog", "transport", "slog")

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for n := 0; n < 5; n++ {
				log.Infof("worker %d message %d", id, n)
			}
		}(i)
	}
	wg.Wait()

	return log.Shutdown()
}
