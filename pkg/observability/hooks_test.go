package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	a := NoopAnalysisHooks{}
	a.OnAnalyzeStart(ctx, "django", "4.2")
	a.OnAnalyzeComplete(ctx, "django", "4.2", 2, time.Second, nil)
	a.OnTagFallback(ctx, "https://github.com/psycopg/psycopg2/", "2.9.3", "2_9_3")
	a.OnSkipped(ctx, "project", "1.0", "no license files")

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "pypi.org", "/pypi/django/json")
	h.OnResponse(ctx, "GET", "pypi.org", "/pypi/django/json", 200, time.Second)
	h.OnError(ctx, "GET", "pypi.org", "/pypi/django/json", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	assert.IsType(t, NoopAnalysisHooks{}, Analysis())
	assert.IsType(t, NoopHTTPHooks{}, HTTP())

	customAnalysis := &testAnalysisHooks{}
	SetAnalysisHooks(customAnalysis)
	assert.Same(t, customAnalysis, Analysis())

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	assert.Same(t, customHTTP, HTTP())

	Reset()
	assert.IsType(t, NoopAnalysisHooks{}, Analysis())
	assert.IsType(t, NoopHTTPHooks{}, HTTP())
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	custom := &testAnalysisHooks{}
	SetAnalysisHooks(custom)
	SetAnalysisHooks(nil)
	assert.Same(t, custom, Analysis())
}

type testAnalysisHooks struct{ NoopAnalysisHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
