package server

import "context"

// HealthChecker reports whether the service's dependencies are usable.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// OkHealthChecker is used when there is nothing to check.
type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(_ context.Context) bool {
	return true
}
