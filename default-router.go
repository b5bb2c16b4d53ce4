package settingsrouter

import (
	"sync"

	"go.uber.org/zap"
)

var (
	defaultMu     sync.Mutex
	defaultRouter *Router
)

// Default returns the process-wide router set with SetDefault or BuildForTesting.
// It panics if none was set; components should prefer a Router handed to them
// through NavigatorSetter.
func Default() *Router {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultRouter == nil {
		panic("settingsrouter: no default router set")
	}
	return defaultRouter
}

// SetDefault installs r as the process-wide router and returns the previous one.
func SetDefault(r *Router) *Router {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultRouter
	defaultRouter = r
	return prev
}

// BuildForTesting builds a new Router from opts, closes the previous default
// router (if any) and installs the new one as default.
func BuildForTesting(opts ...Option) (*Router, error) {

	r, err := New(opts...)
	if err != nil {
		return nil, err
	}

	if prev := SetDefault(r); prev != nil {
		if err := prev.Close(); err != nil {
			r.logger.Debug("closing previous default router", zap.Error(err))
		}
	}

	return r, nil
}

// ResetDefaultForTesting closes and removes the default router.
func ResetDefaultForTesting() error {
	prev := SetDefault(nil)
	if prev == nil {
		return nil
	}
	return prev.Close()
}
