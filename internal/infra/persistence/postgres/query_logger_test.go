package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedQueryLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newQueryLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg), buf
}

func sqlAndRows() (string, int64) {
	return `SELECT * FROM "sessions" WHERE access_token_hash = $1`, 1
}

func TestQueryLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		want    string
		wantLog bool
	}{
		{name: "failure", err: errors.New("relation does not exist"), begin: time.Now(), want: "level=ERROR", wantLog: true},
		{name: "record not found is quiet", err: gorm.ErrRecordNotFound, begin: time.Now()},
		{name: "cancelled request is quiet", err: context.Canceled, begin: time.Now()},
		{name: "slow", begin: time.Now().Add(-time.Second), want: "Slow query", wantLog: true},
		{name: "fast query hidden outside debug", begin: time.Now()},
		{name: "fast query in debug", debug: true, begin: time.Now(), want: "level=INFO", wantLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufferedQueryLogger(tt.debug)

			l.Trace(context.Background(), tt.begin, sqlAndRows, tt.err)

			if !tt.wantLog {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "access_token_hash = $1")
		})
	}
}

func TestQueryLogger_SilentAndRequestScoped(t *testing.T) {
	l, buf := newBufferedQueryLogger(true)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlAndRows, errors.New("boom"))
	assert.Empty(t, buf.String())

	scopedBuf := &bytes.Buffer{}
	scoped := slog.New(slog.NewTextHandler(scopedBuf, nil)).With(slog.String("request_id", "req-9"))
	ctx := deliverycontext.WithLogger(context.Background(), scoped)

	l.Error(ctx, "pool exhausted after %d retries", 3)
	assert.Empty(t, buf.String())
	assert.Contains(t, scopedBuf.String(), "request_id=req-9")
	assert.Contains(t, scopedBuf.String(), "pool exhausted after 3 retries")
}

func TestQueryLogger_ParamsFilterDropsValues(t *testing.T) {
	l := &queryLogger{}

	sql, params := l.ParamsFilter(context.Background(), "UPDATE auth_accounts SET password_hash = ?", "$2a$04$secret")

	assert.Equal(t, "UPDATE auth_accounts SET password_hash = ?", sql)
	assert.Nil(t, params)
}
