// Package health provides liveness and readiness HTTP handlers.
//
// Readiness runs named checks in parallel under a shared timeout. StoreCheck
// and SourceCheck cover the translation store and its backing source:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "store":  health.StoreCheck(store),
//	    "source": health.SourceCheck(src),
//	}, health.WithLogger(log)))
//
// Responses are plain text ("OK" or "Service Unavailable") unless the client
// sends Accept: application/json or ?format=json.
package health
