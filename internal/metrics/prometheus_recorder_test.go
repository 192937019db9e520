package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveResolveDuration("exec", 15*time.Millisecond, true)
	pr.IncRender("python", OutcomeSuccess)
	pr.IncRender("python", OutcomeSuccess)
	pr.IncRender("json", OutcomeFailed)
	pr.SetVersionEntries(3)

	if got := testutil.ToFloat64(pr.renders.WithLabelValues("python", "success")); got != 2 {
		t.Fatalf("python renders = %v, want 2", got)
	}
	if got := testutil.ToFloat64(pr.versionEntries); got != 3 {
		t.Fatalf("version entries = %v, want 3", got)
	}

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(mfs) == 0 {
		t.Fatalf("expected metrics, got none")
	}
}

func TestWriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.IncRender("yaml", OutcomeSuccess)

	path := filepath.Join(t.TempDir(), "srvcdocs.prom")
	if err := WriteTextfile(path, pr.Registry()); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), `srvcdocs_renders_total{format="yaml",outcome="success"} 1`) {
		t.Fatalf("textfile missing render counter:\n%s", data)
	}
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveResolveDuration("repo", time.Second, false)
	r.IncRender("python", OutcomeFailed)
	r.SetVersionEntries(2)
}
