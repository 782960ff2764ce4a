package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestAnalysisLogHooksTagFallback(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		wantLog bool
	}{
		{name: "plain output", quiet: false, wantLog: true},
		{name: "progress bar active", quiet: true, wantLog: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &analysisLogHooks{logger: newLogger(&buf, log.InfoLevel), quiet: tt.quiet}

			h.OnTagFallback(context.Background(), "https://github.com/org/project/", "2.9.3", "2_9_3")

			got := strings.Contains(buf.String(), "using tag")
			if got != tt.wantLog {
				t.Errorf("logged = %v, want %v:\n%s", got, tt.wantLog, buf.String())
			}
		})
	}
}

func TestAnalysisLogHooksTagFallbackVerbose(t *testing.T) {
	var buf bytes.Buffer
	h := &analysisLogHooks{logger: newLogger(&buf, log.DebugLevel), quiet: true}

	h.OnTagFallback(context.Background(), "https://github.com/org/project/", "2.9.3", "2_9_3")

	if !strings.Contains(buf.String(), "tag=2_9_3") {
		t.Errorf("debug log missing tag:\n%s", buf.String())
	}
}
