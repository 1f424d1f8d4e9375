// Package bootstrap wires fault-lib into a service at process start:
//   - console logger setup (format, level, service hook)
//   - fault log recorder over the date-partitioned store
//   - Kafka alert notifier with optional Redis de-duplication
//   - OpenTelemetry tracing initialization
//   - process-scope fault handlers (unobserved failures, fatal faults)
//
// Example usage:
//
//	func main() {
//	    cfg := &Config{}
//	    if err := config.LoadConfig(cfg); err != nil {
//	        panic(err)
//	    }
//	    if err := bootstrap.InitLogger(cfg.Log, "my-service"); err != nil {
//	        panic(err)
//	    }
//
//	    rec, err := bootstrap.InitRecorder(cfg.FaultLog, cfg.Alert, "my-service", nil, nil)
//	    if err != nil {
//	        panic(err)
//	    }
//	    defer rec.Close()
//
//	    proc := bootstrap.InstallProcessHandlers(rec)
//	    defer proc.HandleFatal()
//
//	    // ... serve
//	}
package bootstrap
