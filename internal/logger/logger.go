package logger

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/maxaizer/jobfit/internal/config"
	"github.com/maxaizer/jobfit/internal/metrics"
	"github.com/maxaizer/jobfit/pkg/loki"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const ErrorTypeField = "error_type"

const (
	ErrorTypeDb       = "db"
	ErrorTypeHhApi    = "hh_api"
	ErrorTypeDocument = "document"
	ErrorTypeAnalysis = "analysis"
)

var (
	logFile    *os.File
	lokiPusher *loki.Pusher
)

type prometheusHook struct{}

func (h *prometheusHook) Fire(entry *log.Entry) error {
	errorType, ok := entry.Data[ErrorTypeField].(string)
	if !ok {
		errorType = "unknown"
	}

	metrics.ErrorsCounter.WithLabelValues(errorType).Inc()
	return nil
}

func (h *prometheusHook) Levels() []log.Level {
	return []log.Level{
		log.ErrorLevel,
		log.FatalLevel,
		log.PanicLevel,
	}
}

// lokiHook forwards entries at or above minLevel to Loki.
type lokiHook struct {
	pusher   *loki.Pusher
	minLevel log.Level
}

func (h *lokiHook) Fire(entry *log.Entry) error {
	caller := ""
	if entry.Caller != nil {
		caller = filepath.Base(entry.Caller.Function) + ":" + strconv.Itoa(entry.Caller.Line)
	}

	fields := make(map[string]any, len(entry.Data))
	for k, v := range entry.Data {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		fields[k] = v
	}

	return h.pusher.Push(loki.Entry{
		Time:    entry.Time,
		Level:   entry.Level.String(),
		Message: entry.Message,
		Caller:  caller,
		Fields:  fields,
	})
}

func (h *lokiHook) Levels() []log.Level {
	var levels []log.Level
	for _, level := range log.AllLevels {
		if level <= h.minLevel {
			levels = append(levels, level)
		}
	}
	return levels
}

func parseLevel(level config.LogLevel) log.Level {
	switch level {
	case config.LevelDebug:
		return log.DebugLevel
	case config.LevelWarning:
		return log.WarnLevel
	case config.LevelError:
		return log.ErrorLevel
	case config.LevelFatal:
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

func Setup(cfg config.LoggerConfig) error {
	if err := os.MkdirAll(filepath.Dir(cfg.OutputFile), 0755); err != nil {
		return errors.Wrap(err, "failed to create log directory")
	}

	file, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return errors.Wrap(err, "failed to open log file")
	}
	logFile = file

	log.SetOutput(io.MultiWriter(os.Stdout, logFile))
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000 -0700",
	})
	level := parseLevel(cfg.LogLevel)
	log.SetLevel(level)
	log.AddHook(&prometheusHook{})

	if cfg.LokiURL == "" {
		return nil
	}

	lokiPusher, err = loki.New(loki.Config{
		URL:      cfg.LokiURL,
		Labels:   map[string]string{"app": cfg.AppName},
		Username: cfg.LokiUser,
		Password: cfg.LokiPassword,
	}, func(err error) {
		// written straight to the local outputs so a failing push does not loop back into Loki
		_, _ = io.WriteString(log.StandardLogger().Out, "loki push failed: "+err.Error()+"\n")
	})
	if err != nil {
		return errors.Wrap(err, "failed to start loki pusher")
	}
	log.AddHook(&lokiHook{pusher: lokiPusher, minLevel: level})
	log.Info("Loki logging enabled")
	return nil
}

func Cleanup() {
	if lokiPusher != nil {
		lokiPusher.Stop()
	}
	if logFile != nil {
		_ = logFile.Close()
	}
}
