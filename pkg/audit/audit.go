package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType identifies an audited action.
type EventType string

const (
	EventChainTxSubmitted   EventType = "chain_tx_submitted"
	EventChainTxFailed      EventType = "chain_tx_failed"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventUnauthorizedAccess EventType = "unauthorized_access"
	EventSimulatorStarted   EventType = "rfid_simulator_started"
	EventSimulatorStopped   EventType = "rfid_simulator_stopped"
	EventMediatorStatus     EventType = "mediator_status_changed"
)

// Event is a single audit record.
type Event struct {
	Timestamp    time.Time              `json:"timestamp"`
	Service      string                 `json:"service"`
	Environment  string                 `json:"env"`
	Level        string                 `json:"level"`
	Event        EventType              `json:"event"`
	SubjectType  string                 `json:"subject_type,omitempty"` // "user_id", "ip", "address", "email"
	SubjectValue string                 `json:"subject_value,omitempty"`
	IP           string                 `json:"ip,omitempty"`
	RequestID    string                 `json:"request_id,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// Logger writes audit events through zap.
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

var (
	defaultMu     sync.Mutex
	defaultLogger *Logger
)

// Init builds the production audit logger and installs it as the default.
func Init(serviceName, environment string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	zl, err := config.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		zl, _ = zap.NewProduction()
	}

	l := New(zl, serviceName, environment)
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
	return l
}

// New wraps an existing zap logger.
func New(zl *zap.Logger, serviceName, environment string) *Logger {
	return &Logger{zapLogger: zl, serviceName: serviceName, environment: environment}
}

// Default returns the installed logger, or a no-op logger before Init.
func Default() *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		return New(zap.NewNop(), "gps-jobboard", "development")
	}
	return defaultLogger
}

// Log writes event at a level derived from its type.
func (l *Logger) Log(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Service = l.serviceName
	event.Environment = l.environment

	level := levelFor(event.Event)
	event.Level = level.String()

	fields := []zap.Field{
		zap.String("service", event.Service),
		zap.String("env", event.Environment),
		zap.String("event", string(event.Event)),
		zap.Time("event_time", event.Timestamp),
	}
	if event.SubjectType != "" {
		fields = append(fields, zap.String("subject_type", event.SubjectType))
	}
	if event.SubjectValue != "" {
		fields = append(fields, zap.String("subject_value", maskValue(event.SubjectType, event.SubjectValue)))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	l.zapLogger.Log(level, string(event.Event), fields...)
}

// ChainTxSubmitted records a signed transaction handed to the RPC node.
func (l *Logger) ChainTxSubmitted(ctx context.Context, userID, requestID, contract, method, txHash string) {
	l.Log(ctx, Event{
		Event:        EventChainTxSubmitted,
		SubjectType:  "user_id",
		SubjectValue: userID,
		RequestID:    requestID,
		Details: map[string]interface{}{
			"contract": contract,
			"method":   method,
			"tx_hash":  txHash,
		},
	})
}

// ChainTxFailed records a transaction that could not be built or sent.
func (l *Logger) ChainTxFailed(ctx context.Context, userID, requestID, contract, method string, err error) {
	l.Log(ctx, Event{
		Event:        EventChainTxFailed,
		SubjectType:  "user_id",
		SubjectValue: userID,
		RequestID:    requestID,
		Details: map[string]interface{}{
			"contract": contract,
			"method":   method,
			"error":    err.Error(),
		},
	})
}

// RateLimitTriggered records a rejected request.
func (l *Logger) RateLimitTriggered(ctx context.Context, ip, requestID, endpoint string) {
	l.Log(ctx, Event{
		Event:        EventRateLimitTriggered,
		SubjectType:  "ip",
		SubjectValue: ip,
		IP:           ip,
		RequestID:    requestID,
		Details:      map[string]interface{}{"endpoint": endpoint},
	})
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}

func levelFor(event EventType) zapcore.Level {
	switch event {
	case EventChainTxSubmitted, EventSimulatorStarted, EventSimulatorStopped, EventMediatorStatus:
		return zapcore.InfoLevel
	case EventChainTxFailed, EventUnauthorizedAccess:
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if len(email) < 3 || at < 0 {
		return "***"
	}
	if at <= 1 {
		return "***" + email[at:]
	}
	return email[:1] + "***" + email[at:]
}

// MaskAddress keeps the first and last four hex digits of a wallet address.
func MaskAddress(addr string) string {
	if len(addr) < 12 {
		return "***"
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

// HashValue returns a short SHA256 prefix so identifiers can be correlated without being stored.
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}

func maskValue(subjectType, value string) string {
	switch subjectType {
	case "email":
		return MaskEmail(value)
	case "address":
		return MaskAddress(value)
	case "ip", "user_id":
		return value
	default:
		return HashValue(value)
	}
}
