// The escalation worker drains red triage events off the bus and notifies
// the on-call clinical staff channel.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spinetrack/platform/pkg/common/kafka"
	"github.com/spinetrack/platform/pkg/common/logger"
	"github.com/spinetrack/platform/pkg/common/models"
)

func main() {
	logger.Init()

	consumer := kafka.NewConsumer(kafka.TopicTriageEscalations, "")
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Log.Info("Shutting down escalation worker...")
		cancel()
	}()

	logger.Log.Info("Escalation worker consuming triage events")
	if err := consumer.Consume(ctx, handleEscalation); err != nil && err != context.Canceled {
		logger.Log.WithError(err).Fatal("escalation consumer stopped")
	}
	logger.Log.Info("Escalation worker stopped")
}

// handleEscalation alerts on red triage results. Notification delivery (SMS,
// on-call paging) hangs off this log hook.
func handleEscalation(ctx context.Context, event models.Event) error {
	if event.Type != "triage.escalated" {
		logger.Log.WithField("event_type", event.Type).Debug("Ignoring non-escalation event")
		return nil
	}

	logger.Log.WithFields(map[string]interface{}{
		"event_id":      event.ID,
		"patient_name":  event.Data["patient_name"],
		"surgery_type":  event.Data["surgery_type"],
		"current_stage": event.Data["current_stage"],
		"message":       event.Data["message"],
	}).Warn("RED triage escalation received")

	return nil
}
