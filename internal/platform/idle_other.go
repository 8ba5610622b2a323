//go:build !windows && !linux && !darwin

package platform

type idleProvider struct{}

func newIdleProvider() IdleProvider {
	return &idleProvider{}
}

func (provider *idleProvider) IdleSeconds() (uint32, error) {
	return 0, ErrIdleUnsupported
}
