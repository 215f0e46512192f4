package client

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

// RequestID keys the request identifier carried in a call's context and
// echoed in the X-Request-Id header.
const RequestID contextKey = "requestId"

type fintavaLogger struct {
	*logrus.Entry
}

func newFintavaLogger(log *logrus.Logger) *fintavaLogger {
	if log == nil {
		log = logrus.New()
	}
	return &fintavaLogger{Entry: log.WithField("component", "fintava.client")}
}

func (l *fintavaLogger) getRequestID(ctx context.Context) (out uuid.UUID) {
	var ok bool
	var err error
	if val := ctx.Value(RequestID); val != nil {
		if out, ok = val.(uuid.UUID); ok {
			return
		} else if out, err = uuid.Parse(fmt.Sprint(val)); err == nil {
			return
		}
	}
	return uuid.New()
}

func (l *fintavaLogger) request(requestId uuid.UUID, method, url string) *logrus.Entry {
	entry := l.WithFields(logrus.Fields{
		"requestId": requestId,
		"method":    method,
		"url":       url,
	})
	entry.Debug("sending request")
	return entry
}

func (l *fintavaLogger) response(entry *logrus.Entry, status int, started time.Time) {
	entry.WithFields(logrus.Fields{
		"status":   status,
		"duration": time.Since(started).String(),
	}).Debug("received response")
}
