package observe

import (
	"encoding/json"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"

	"go.uber.org/zap/zapcore"
)

const (
	_sentryMaxErrorDepth        int           = 9
	_sentryServerRequestTimeout time.Duration = 5 * time.Second
)

// SentryHook is an io.Writer that feeds error-level log lines from the zap
// multi-writer into Sentry. Non-error lines pass through untouched.
type SentryHook struct {
	appZone string
	appName string
	l       *Logger
}

func NewSentryHook(
	appZone, appName string,
	isDebug bool,
	dsn string,
) *SentryHook {
	if dsn == "" {
		log.Println("Stacktracer init error: no DSN")
	}
	sentryTransport := sentry.NewHTTPTransport()
	sentryTransport.Timeout = _sentryServerRequestTimeout
	if err := sentry.Init(
		sentry.ClientOptions{
			AttachStacktrace: true,
			Debug:            isDebug,
			Dsn:              dsn,
			Environment:      appZone,
			MaxErrorDepth:    _sentryMaxErrorDepth,
			ServerName:       appName,
			Transport:        sentryTransport,
		}); err != nil {
		log.Println("Stacktracer init error: ", err.Error())
	}
	return &SentryHook{
		appZone: appZone,
		appName: appName,
	}
}

func (*SentryHook) mapLevel(zl zapcore.Level) sentry.Level {
	switch zl {
	case zapcore.DebugLevel, zapcore.InvalidLevel:
		return sentry.LevelDebug
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.FatalLevel, zapcore.PanicLevel:
		return sentry.LevelFatal
	}

	return sentry.LevelDebug
}

// forwards reports whether log lines from this environment go to Sentry.
// The values match the APP_ENV vocabulary used by config.
func (h *SentryHook) forwards() bool {
	return h.appZone == "production" || h.appZone == "development"
}

func (h *SentryHook) Write(p []byte) (n int, err error) {
	if h.forwards() {
		if event := h.eventFromLine(p); event != nil {
			sentry.CaptureEvent(event)
		}
	}

	return len(p), nil
}

// eventFromLine turns one zap JSON line into a Sentry event. Lines below
// error level, and lines that do not parse, yield nil.
func (h *SentryHook) eventFromLine(p []byte) *sentry.Event {
	type T struct {
		Level      string `json:"level"`
		AppName    string `json:"app_name"`
		AppEnv     string `json:"app_env"`
		CallerFile string `json:"caller_file"`
		CallerLine int    `json:"caller_line"`
		CallerFunc string `json:"caller_func"`
		Stack      string `json:"stack"`
		Message    string `json:"msg"`
		Error      string `json:"error"`
		Timestamp  string `json:"timestamp"`
	}
	t := T{}
	if err := json.Unmarshal(p, &t); err != nil {
		msg := errors.New("[SentryHook] json.Unmarshal data")
		if h.l != nil {
			h.l.Error(msg)
		} else {
			log.Println(msg.Error())
		}
		return nil
	}

	level, err := zapcore.ParseLevel(t.Level)
	if err != nil {
		msg := errors.Wrap(err, "[SentryHook] parse zap level: ")
		if h.l != nil {
			h.l.Error(msg)
		} else {
			log.Println(msg.Error())
		}
		return nil
	}
	if len(t.Message) == 0 {
		return nil
	}

	switch level {
	case zapcore.ErrorLevel, zapcore.FatalLevel, zapcore.PanicLevel:
	default:
		return nil
	}

	timestamp, _ := time.ParseInLocation(logTimeLayout, t.Timestamp, time.UTC)

	event := sentry.NewEvent()
	event.Extra["AppName"] = h.appName
	event.Environment = h.appZone
	event.Level = h.mapLevel(level)
	event.Timestamp = timestamp
	event.Message = t.Message
	event.Extra["Error"] = t.Error
	event.Extra["CallerFile"] = t.CallerFile
	event.Extra["CallerLine"] = t.CallerLine
	event.Extra["CallerFunc"] = t.CallerFunc
	event.Extra["Stack"] = t.Stack
	event.Extra["TimeStamp"] = t.Timestamp
	for k, v := range event.Tags {
		if v == "" {
			delete(event.Tags, k)
		}
	}
	event.Exception = append(event.Exception, sentry.Exception{
		Type:       t.Message,
		Value:      t.Error,
		Stacktrace: sentry.NewStacktrace(),
	})

	return event
}

func (h *SentryHook) SetLogger(logger *Logger) {
	if logger != nil {
		h.l = logger
	}
}
