package bootstrap

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/Goden-Gun/fault-lib/pkg/config"
)

// serviceHook stamps the service and node identity on every console line.
type serviceHook struct {
	service string
	node    string
}

func (h *serviceHook) Levels() []log.Level {
	return log.AllLevels
}

func (h *serviceHook) Fire(entry *log.Entry) error {
	entry.Data["service"] = h.service
	if h.node != "" {
		entry.Data["node"] = h.node
	}
	return nil
}

func detectNodeID() string {
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		return hostname
	}
	return "unknown"
}

// InitLogger configures the shared logrus backend: format, level, caller
// reporting and the service identity hook. File output belongs to the fault
// log recorder, not here.
func InitLogger(cfg config.LogConfig, serviceName string) error {
	switch cfg.Format {
	case "text":
		log.SetFormatter(&log.TextFormatter{})
	default:
		log.SetFormatter(&log.JSONFormatter{})
	}

	if lvl, err := log.ParseLevel(cfg.Level); err == nil {
		log.SetLevel(lvl)
	} else {
		log.SetLevel(log.InfoLevel)
		log.Warnf("invalid log level %q, fallback to info", cfg.Level)
	}

	log.SetReportCaller(cfg.ReportCaller)

	if serviceName != "" {
		log.AddHook(&serviceHook{service: serviceName, node: detectNodeID()})
	}

	return nil
}
