// Package metrics records what a configuration run did.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics cost nothing unless the CLI is asked for them:
//
//	reg := prometheus.NewRegistry()
//	emitter := sphinx.NewEmitter(cfg, resolver).WithRecorder(metrics.NewPrometheusRecorder(reg))
//
// A one-shot CLI has no scrape endpoint, so PrometheusRecorder's registry is
// written out with WriteTextfile for the node exporter textfile collector.
package metrics
