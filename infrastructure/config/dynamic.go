package config

import "sync"

// Policies are the runtime-changeable knobs. They control how reads
// behave when the store is unhealthy and whether starter content gets
// written on first load.
type Policies struct {
	// CommunityLoadDegrade serves built-in defaults when the community
	// read path fails; question listings always fail closed.
	CommunityLoadDegrade bool `yaml:"communityLoadDegrade"`

	// CommunitySeed writes the starter categories, threads, and posts
	// when the store holds none.
	CommunitySeed bool `yaml:"communitySeed"`

	// QASeed writes the starter questions when the store holds none.
	QASeed bool `yaml:"qaSeed"`
}

// DefaultPolicies are used when no policy file is configured.
func DefaultPolicies() Policies {
	return Policies{
		CommunityLoadDegrade: true,
		CommunitySeed:        true,
		QASeed:               true,
	}
}

// Dynamic holds the current policies behind a lock so the file watcher
// can swap them at runtime.
type Dynamic struct {
	mu       sync.RWMutex
	policies Policies
}

// NewDynamic creates a Dynamic seeded with the given policies.
func NewDynamic(p Policies) *Dynamic {
	return &Dynamic{policies: p}
}

// Current returns a copy of the active policies.
func (d *Dynamic) Current() Policies {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.policies
}

// Update replaces the active policies.
func (d *Dynamic) Update(p Policies) {
	d.mu.Lock()
	d.policies = p
	d.mu.Unlock()
}
