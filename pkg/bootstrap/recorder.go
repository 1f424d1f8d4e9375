package bootstrap

import (
	"io"

	"github.com/redis/go-redis/v9"

	"github.com/Goden-Gun/fault-lib/pkg/codes"
	"github.com/Goden-Gun/fault-lib/pkg/config"
	"github.com/Goden-Gun/fault-lib/pkg/faultlog"
	"github.com/Goden-Gun/fault-lib/pkg/notify"
)

// InitKafkaNotifier builds the Kafka alert notifier, reading the SASL
// password from Docker secrets when present.
func InitKafkaNotifier(cfg notify.KafkaConfig) (*notify.Kafka, error) {
	cfg.Password = config.GetSecretOrEnv("KAFKA_PASSWORD", cfg.Password)
	return notify.NewKafka(cfg)
}

// InitRecorder assembles the fault log recorder: partition store, alert
// threshold and optional Redis-deduplicated notifier. notifier and rdb may
// be nil.
func InitRecorder(logCfg config.FaultLogConfig, alertCfg config.AlertConfig, serviceName string, notifier notify.Notifier, rdb *redis.Client) (*faultlog.Recorder, error) {
	logCfg.ApplyDefaults()
	alertCfg.ApplyDefaults()

	opts := faultlog.Options{
		Service: serviceName,
	}
	if logCfg.Enabled {
		opts.Dir = logCfg.Dir
		opts.Filename = logCfg.Filename
		opts.MaxAgeDays = logCfg.MaxAgeDays
	} else {
		// Console mirror only.
		opts.Writer = io.Discard
	}

	if alertCfg.Enabled && notifier != nil {
		opts.NotifyMinSeverity = codes.Severity(alertCfg.MinSeverity)
		if rdb != nil {
			notifier = notify.NewDedup(notifier, rdb, alertCfg.DedupWindow.Duration())
		}
		opts.Notifier = notifier
	}

	return faultlog.NewRecorder(opts)
}
