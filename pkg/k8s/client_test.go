package k8s

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/version"
	fakediscovery "k8s.io/client-go/discovery/fake"
	"k8s.io/client-go/kubernetes/fake"
)

const kubeconfig = `apiVersion: v1
kind: Config
clusters:
- cluster:
    server: https://127.0.0.1:6443
  name: dojo
contexts:
- context:
    cluster: dojo
    user: educator
  name: dojo
current-context: dojo
users:
- name: educator
  user:
    token: abc
`

func TestNewClientFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(kubeconfig), 0600))

	c, err := NewClientFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "https://127.0.0.1:6443", c.Config.Host)

	assert.Equal(t, "citizen-dojo", c.Config.UserAgent)

	_, err = NewClientFromPath(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestNewClientFromKubeconfigList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	require.NoError(t, os.WriteFile(path, []byte(kubeconfig), 0600))

	// The first entry does not exist; the loader skips it.
	t.Setenv("KUBECONFIG", filepath.Join(dir, "absent")+string(os.PathListSeparator)+path)

	c, err := NewClientFromPath("")
	require.NoError(t, err)
	assert.Equal(t, "https://127.0.0.1:6443", c.Config.Host)
}

func TestServerVersion(t *testing.T) {
	clientset := fake.NewClientset()
	clientset.Discovery().(*fakediscovery.FakeDiscovery).FakedServerVersion = &version.Info{GitVersion: "v1.35.0"}

	v, err := (&Client{Clientset: clientset}).ServerVersion()
	require.NoError(t, err)
	assert.Equal(t, "v1.35.0", v)
}
