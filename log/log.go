package log

import (
	"context"

	"github.com/sirupsen/logrus"
)

type ctxKey int

const (
	entryKey ctxKey = iota
	correlationIDKey
)

func Init(level logrus.Level) {
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

func ToContext(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, entryKey, entry)
}

func FromContext(ctx context.Context) *logrus.Entry {
	entry, ok := ctx.Value(entryKey).(*logrus.Entry)
	if !ok {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return entry
}

func ContextWithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey, correlationID)
}

func CorrelationIDFromContext(ctx context.Context) string {
	id, ok := ctx.Value(correlationIDKey).(string)
	if !ok {
		return ""
	}
	return id
}
