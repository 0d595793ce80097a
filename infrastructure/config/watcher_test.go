package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDynamicUpdateSwapsPolicies(t *testing.T) {
	dynamic := NewDynamic(DefaultPolicies())
	assert.True(t, dynamic.Current().QASeed)

	dynamic.Update(Policies{QASeed: false, CommunitySeed: true})
	current := dynamic.Current()
	assert.False(t, current.QASeed)
	assert.True(t, current.CommunitySeed)
	assert.False(t, current.CommunityLoadDegrade)
}

func TestWatcherLoadsInitialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policies.yaml")
	require.NoError(t, os.WriteFile(path, []byte("communityLoadDegrade: false\nqaSeed: false\n"), 0o644))

	dynamic := NewDynamic(DefaultPolicies())
	watcher, err := NewPolicyWatcher(path, dynamic, zap.NewNop())
	require.NoError(t, err)
	defer watcher.Stop()

	current := dynamic.Current()
	assert.False(t, current.CommunityLoadDegrade)
	assert.False(t, current.QASeed)
	// Keys absent from the file keep their defaults.
	assert.True(t, current.CommunitySeed)
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policies.yaml")
	require.NoError(t, os.WriteFile(path, []byte("qaSeed: true\n"), 0o644))

	dynamic := NewDynamic(DefaultPolicies())
	watcher, err := NewPolicyWatcher(path, dynamic, zap.NewNop())
	require.NoError(t, err)
	defer watcher.Stop()
	watcher.Start()

	require.NoError(t, os.WriteFile(path, []byte("qaSeed: false\n"), 0o644))

	deadline := time.After(3 * time.Second)
	for dynamic.Current().QASeed {
		select {
		case <-deadline:
			t.Fatal("policies were not reloaded after the file changed")
		case <-time.After(20 * time.Millisecond):
		}
	}
}

func TestWatcherKeepsPoliciesOnBadReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policies.yaml")
	require.NoError(t, os.WriteFile(path, []byte("qaSeed: false\n"), 0o644))

	dynamic := NewDynamic(DefaultPolicies())
	watcher, err := NewPolicyWatcher(path, dynamic, zap.NewNop())
	require.NoError(t, err)
	defer watcher.Stop()
	watcher.Start()

	require.NoError(t, os.WriteFile(path, []byte(":: not yaml ::"), 0o644))
	time.Sleep(300 * time.Millisecond)

	assert.False(t, dynamic.Current().QASeed)
}

func TestWatcherRejectsMissingFile(t *testing.T) {
	dynamic := NewDynamic(DefaultPolicies())
	_, err := NewPolicyWatcher(filepath.Join(t.TempDir(), "absent.yaml"), dynamic, zap.NewNop())
	assert.Error(t, err)
}
