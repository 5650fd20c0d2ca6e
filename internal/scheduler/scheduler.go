package scheduler

import (
	"context"
	"fmt"
	"html"
	"log"

	"BalanceSentinel/internal/collector"
	"BalanceSentinel/internal/diagnosis"
	"BalanceSentinel/internal/model"
	"BalanceSentinel/internal/notifier"

	"github.com/robfig/cron/v3"
)

// Sender delivers report text.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Scheduler manages the cron tasks and chat commands.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  Sender
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, sender Sender) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Notifier:  sender,
		Ctx:       ctx,
	}
}

// Register registers the periodic report task.
func (s *Scheduler) Register(reportCron string) error {
	if _, err := s.Cron.AddFunc(reportCron, s.reportTask); err != nil {
		return fmt.Errorf("register report task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for running tasks.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunReportNow executes the report task immediately (for RUN_ON_START).
func (s *Scheduler) RunReportNow() {
	s.reportTask()
}

func (s *Scheduler) reportTask() {
	log.Println("[INFO] running report task")
	d, err := s.diagnose()
	if err != nil {
		log.Printf("[ERROR] report: %v", err)
		s.trySend(failureNotice(err))
		return
	}
	s.trySend(notifier.FormatDiagnosisReport(d))
}

func (s *Scheduler) diagnose() (*model.Diagnosis, error) {
	snap, err := s.Collector.Collect(s.Ctx)
	if err != nil {
		return nil, err
	}
	d := diagnosis.Evaluate(snap)
	for _, m := range d.Metrics {
		if !m.Applicable() {
			log.Printf("[WARN] metric %s not applicable: %s", m.Name, m.Err)
		}
	}
	log.Printf("[INFO] diagnosis %s: %d recommendation(s)", d.SnapshotID, len(d.Recommendations))
	return d, nil
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "查看健檢", "/diagnose":
		d, err := s.diagnose()
		if err != nil {
			return failureNotice(err)
		}
		return notifier.FormatDiagnosisReport(d)
	case "查看指標", "/metrics":
		d, err := s.diagnose()
		if err != nil {
			return failureNotice(err)
		}
		return notifier.FormatMetricsSummary(d)
	default:
		return "可用命令:\n• 查看健檢 (/diagnose)\n• 查看指標 (/metrics)"
	}
}

// failureNotice escapes err so the HTML-mode message stays parseable.
func failureNotice(err error) string {
	return "❌ 健檢資料讀取失敗: " + html.EscapeString(err.Error())
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
