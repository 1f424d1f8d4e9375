// Package faultlog is the durable fault logging pipeline: a structured
// console mirror keyed by severity plus an append-only JSON line per fault
// in a UTC-date-partitioned file.
package faultlog

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"

	"github.com/Goden-Gun/fault-lib/pkg/codes"
	"github.com/Goden-Gun/fault-lib/pkg/fault"
	log "github.com/Goden-Gun/fault-lib/pkg/logger"
	"github.com/Goden-Gun/fault-lib/pkg/notify"
	"github.com/Goden-Gun/fault-lib/pkg/tracing"
)

// Options configures a Recorder.
type Options struct {
	// Dir and Filename place the partition files at Dir/Filename.%Y%m%d.log.
	Dir      string
	Filename string
	// MaxAgeDays bounds partition retention (default 7).
	MaxAgeDays int

	// Service is stamped on outgoing alerts.
	Service string
	// Notifier receives attention-grade entries. Nil disables alerting.
	Notifier notify.Notifier
	// NotifyMinSeverity is the alerting threshold (default high).
	NotifyMinSeverity codes.Severity

	// Writer replaces the partition file as the append target. Meant for
	// tests; Dir/Filename are ignored when set.
	Writer io.Writer
}

// Recorder appends one LogEntry per observed failure. Record is best effort
// and never propagates a failure to its caller: a broken log must not break
// the request that produced the fault.
type Recorder struct {
	out      io.Writer
	closer   io.Closer
	notifier notify.Notifier
	service  string
	minSev   codes.Severity
}

// NewRecorder opens the date-partitioned fault log. The partition path is a
// pure function of the UTC date; rotation relies on the storage layer's
// atomic append, no lock is held across Record calls.
func NewRecorder(opts Options) (*Recorder, error) {
	r := &Recorder{
		out:      opts.Writer,
		notifier: opts.Notifier,
		service:  opts.Service,
		minSev:   opts.NotifyMinSeverity,
	}
	if !r.minSev.Valid() {
		r.minSev = codes.SeverityHigh
	}
	if r.out != nil {
		return r, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = "./logs"
	}
	name := opts.Filename
	if name == "" {
		name = "faults"
	}
	maxAge := opts.MaxAgeDays
	if maxAge <= 0 {
		maxAge = 7
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	writer, err := rotatelogs.New(
		filepath.Join(dir, name+".%Y%m%d.log"),
		rotatelogs.WithLinkName(filepath.Join(dir, name+".log")),
		rotatelogs.WithClock(rotatelogs.UTC),
		rotatelogs.WithMaxAge(time.Duration(maxAge)*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return nil, err
	}
	r.out = writer
	r.closer = writer
	return r, nil
}

// Record logs one fault. Missing fields are defaulted rather than rejected,
// the console mirror is always emitted, and a failed partition write is
// reported to the console only.
func (r *Recorder) Record(ctx context.Context, ferr *fault.Error, req *RequestContext) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Errorf("fault recorder panic: %v", rec)
		}
	}()

	entry := r.buildEntry(ctx, ferr, req)
	r.mirror(entry)
	r.append(entry)
	r.alert(ctx, entry)
}

func (r *Recorder) buildEntry(ctx context.Context, ferr *fault.Error, req *RequestContext) LogEntry {
	entry := LogEntry{
		Severity:    codes.Unknown.Severity,
		Code:        codes.Unknown.Code,
		StatusCode:  codes.Unknown.Status,
		Message:     codes.Unknown.Message,
		Operational: true,
		TraceID:     tracing.TraceID(ctx),
		Request:     req,
	}

	ts := time.Now().UTC()
	if ferr != nil {
		if !ferr.Timestamp.IsZero() {
			ts = ferr.Timestamp.UTC()
		}
		if ferr.Severity.Valid() {
			entry.Severity = ferr.Severity
		}
		if ferr.Code != "" {
			entry.Code = ferr.Code
		}
		if codes.ValidStatus(ferr.StatusCode) {
			entry.StatusCode = ferr.StatusCode
		}
		if ferr.Message != "" {
			entry.Message = ferr.Message
		}
		entry.Operational = ferr.Operational
		entry.Stack = ferr.Stack
		entry.Details = ferr.Details
	}
	entry.Timestamp = ts.Format(time.RFC3339Nano)
	return entry
}

// mirror emits one console line. Attention-grade severities go to the error
// channel with the full stack; the rest stay informational without it.
func (r *Recorder) mirror(entry LogEntry) {
	fields := log.Fields{
		"errorCode":     entry.Code,
		"severity":      entry.Severity,
		"statusCode":    entry.StatusCode,
		"isOperational": entry.Operational,
	}
	if entry.TraceID != "" {
		fields["trace_id"] = entry.TraceID
	}
	if entry.Request != nil && entry.Request.ID != "" {
		fields["request_id"] = entry.Request.ID
	}

	switch {
	case entry.Severity.AtLeast(codes.SeverityHigh):
		fields["stack"] = entry.Stack
		log.WithFields(fields).Error(entry.Message)
	case entry.Severity == codes.SeverityMedium:
		log.WithFields(fields).Warn(entry.Message)
	default:
		log.WithFields(fields).Info(entry.Message)
	}
}

// append writes one self-contained JSON line. A single Write call is the
// unit of atomicity; concurrent entries may land in either order but each
// line stays intact.
func (r *Recorder) append(entry LogEntry) {
	if r.out == nil {
		return
	}
	line, err := json.Marshal(entry)
	if err == nil {
		_, err = r.out.Write(append(line, '\n'))
	}
	if err != nil {
		log.WithError(err).Error("fault log write failed")
	}
}

func (r *Recorder) alert(ctx context.Context, entry LogEntry) {
	if r.notifier == nil || !entry.Severity.AtLeast(r.minSev) {
		return
	}
	alert := notify.Alert{
		Code:      entry.Code,
		Severity:  entry.Severity,
		Message:   entry.Message,
		Timestamp: entry.Timestamp,
		Service:   r.service,
		TraceID:   entry.TraceID,
	}
	if entry.Request != nil {
		alert.RequestID = entry.Request.ID
	}
	if err := r.notifier.Notify(ctx, alert); err != nil {
		log.WithError(err).Warn("fault alert delivery failed")
	}
}

// Close releases the partition writer.
func (r *Recorder) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}
