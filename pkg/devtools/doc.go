// Package devtools provides observability for tracked effects.
//
// A Recorder implements tracked.Observer: it keeps a bounded in-memory
// ring of recent effect runs, exports Prometheus metrics, optionally
// emits an OpenTelemetry span per run, and fans records out to live
// subscribers. Server exposes the recorder over HTTP: a JSON snapshot,
// a WebSocket live stream, and the Prometheus endpoint.
//
//	rec := devtools.NewRecorder(devtools.WithCapacity(256))
//	srv := devtools.NewServer(rec, devtools.ServerConfig{Addr: ":6070"})
//	go srv.ListenAndServe()
//
//	hooks.UseTrackedEffect(fn, deps,
//	    tracked.WithName("search.results"),
//	    tracked.WithObserver(rec))
package devtools
