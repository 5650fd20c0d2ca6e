package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"BalanceSentinel/internal/collector"
	"BalanceSentinel/internal/config"
	"BalanceSentinel/internal/notifier"
	"BalanceSentinel/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] BalanceSentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init snapshot source
	var src collector.Source
	if cfg.Snapshot.URL != "" {
		src = collector.NewHTTPSource(cfg.Snapshot.URL, cfg.Snapshot.APIKey, cfg.Proxy)
	} else {
		src = collector.NewFileSource(cfg.Snapshot.Path)
	}
	log.Printf("[INFO] snapshot source: %s", src.Name())

	col := collector.NewCollector(src)

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.APIURL, cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, tn)
	if err := sched.Register(cfg.Schedule.ReportCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing report task now")
		go sched.RunReportNow()
	}

	log.Println("[INFO] BalanceSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] BalanceSentinel stopped")
}
