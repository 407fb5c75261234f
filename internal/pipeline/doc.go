// Package pipeline implements the middleware composition contract of gatekit.
//
// A Service turns a Request into a Response; a Layer wraps one Service to
// produce another. Pipelines are assembled once at startup with Build, which
// applies Layers around a terminal Service in a fixed, declared order: the
// first Layer listed is outermost, executing first on the way in and last on
// the way out. No reordering happens at request time.
//
// Every wrapping Service delegates Ready to its inner Service before
// accepting a request, so a saturated inner resource can push backpressure
// outward instead of buffering at each layer.
//
// The package also ships adapters between the pipeline world and net/http:
// HTTPHandler exposes a composed Service as an http.Handler, and WrapHandler
// turns any http.Handler (for example a chi mux) into a terminal Service.
package pipeline
