package chain

import "github.com/ib-77/fluent/pkg/fluent/config"

// internal is implemented by every wrapper so sibling wrappers can rebuild it
// without knowing its concrete type.
type internal[S any, T any] interface {
	proxy() proxy[S, T]
}

// proxy is the capability a wrapper hands to its collaborators: read the held
// item and configuration, rebuild the owner around a new item, reach the owner.
type proxy[S any, T any] struct {
	item    T
	absent  bool
	cfg     *config.Configuration
	self    S
	rebuild func(item T, cfg *config.Configuration) S
}

func (p proxy[S, T]) getItem() T {
	return p.item
}

func (p proxy[S, T]) getConfiguration() *config.Configuration {
	return p.cfg
}

func (p proxy[S, T]) owner() S {
	return p.self
}

// empty reports whether the held item counts as absent for the owner
func (p proxy[S, T]) empty() bool {
	return p.absent
}

func (p proxy[S, T]) copy(item T, cfg *config.Configuration) S {
	return p.rebuild(item, cfg)
}

func (p proxy[S, T]) copyItem(item T) S {
	return p.copy(item, p.getConfiguration())
}

func (p proxy[S, T]) clone() S {
	return p.copy(p.getItem(), p.getConfiguration())
}
