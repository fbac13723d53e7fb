// Package metrics records sidebar build observations.
//
// Components receive a Recorder and default to NoopRecorder, so metrics cost nothing
// unless a PrometheusRecorder is injected:
//
//	recorder := metrics.NewPrometheusRecorder(registry)
//	service := build.NewService(cfg, cwd).WithRecorder(recorder)
//
// The watch command serves the registry through HTTPHandler when a metrics address is
// configured.
package metrics
