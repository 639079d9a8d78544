package cache

// ScopedKeyer prepends a fixed scope to every key from an inner [Keyer].
// The CLI scopes by release so a new version never serves artifacts drawn
// by an older one; a shared Redis can also be split per environment.
//
//	keyer := cache.NewScopedKeyer(nil, "v1.2.0:")
type ScopedKeyer struct {
	inner Keyer
	scope string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, scope string) Keyer {
	if inner == nil {
		inner = DefaultKeyer{}
	}
	return &ScopedKeyer{inner: inner, scope: scope}
}

func (k *ScopedKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return k.scope + k.inner.LayoutKey(graphHash, opts)
}

func (k *ScopedKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return k.scope + k.inner.ArtifactKey(graphHash, opts)
}
