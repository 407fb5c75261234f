// Package middleware ships the pipeline layers of gatekit: the generic
// before/after interceptor (with its IP-denylist instance), bearer-token
// authentication, per-request access logging, trace-ID propagation, and
// token-bucket rate limiting.
//
// Every layer follows the same discipline: configuration is immutable after
// construction and freely shared across concurrent requests, rejections are
// converted to envelope responses at the point of detection, and inner
// errors propagate outward untouched.
package middleware
