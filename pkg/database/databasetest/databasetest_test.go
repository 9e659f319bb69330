package databasetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingTB struct {
	testing.TB
	skipped bool
	failed  bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Skip(...interface{}) {
	r.skipped = true
}

func (r *recordingTB) Fatal(...interface{}) {
	r.failed = true
}

func TestLookupDSN(t *testing.T) {
	tests := []struct {
		name        string
		dsn         string
		require     string
		wantDSN     string
		wantSkipped bool
		wantFailed  bool
	}{
		{name: "dsn set", dsn: "postgres://localhost/test", wantDSN: "postgres://localhost/test"},
		{name: "missing dsn skips", wantSkipped: true},
		{name: "missing dsn fails when required", require: "1", wantFailed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DATABASE_DSN", tt.dsn)
			t.Setenv("TEST_REQUIRE_DATABASE", tt.require)

			rec := &recordingTB{TB: t}
			assert.Equal(t, tt.wantDSN, lookupDSN(rec))
			assert.Equal(t, tt.wantSkipped, rec.skipped)
			assert.Equal(t, tt.wantFailed, rec.failed)
		})
	}
}
