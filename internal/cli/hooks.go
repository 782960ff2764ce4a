package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/licensetracker/pkg/observability"
)

// httpLogHooks logs every API round trip at debug level.
type httpLogHooks struct {
	logger *log.Logger
}

func (h *httpLogHooks) OnRequest(context.Context, string, string, string) {}

func (h *httpLogHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http", "method", method, "host", host, "path", path, "status", status, "took", d.Round(time.Millisecond))
}

func (h *httpLogHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http failed", "method", method, "host", host, "path", path, "err", err)
}

// analysisLogHooks reports pipeline events worth a user's attention.
// With quiet set, warnings drop to debug so they don't write over the progress bar.
type analysisLogHooks struct {
	observability.NoopAnalysisHooks
	logger *log.Logger
	quiet  bool
}

func (h *analysisLogHooks) OnTagFallback(_ context.Context, repoURL, ref, tag string) {
	level := log.WarnLevel
	if h.quiet {
		level = log.DebugLevel
	}
	h.logger.Log(level, "version is not a git ref, using tag", "repo", repoURL, "version", ref, "tag", tag)
}

func (h *analysisLogHooks) OnAnalyzeComplete(_ context.Context, name, version string, files int, d time.Duration, err error) {
	if err != nil {
		return
	}
	h.logger.Debug("analyzed", "package", name, "version", version, "files", files, "took", d.Round(time.Millisecond))
}
