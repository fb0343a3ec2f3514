// Package k8s provides Kubernetes client functionality for reading the game
// catalog from a cluster.
package k8s

import (
	"fmt"
	"time"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// Client wraps the Kubernetes clientset with helper methods.
type Client struct {
	Clientset kubernetes.Interface
	Config    *rest.Config
}

// NewClientFromPath creates a new Client from a kubeconfig file. An empty path
// uses the standard loading rules: $KUBECONFIG (which may list several files),
// then ~/.kube/config, then in-cluster configuration.
func NewClientFromPath(path string) (*Client, error) {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	rules.ExplicitPath = path

	config, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, &clientcmd.ConfigOverrides{}).ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}
	return newClient(config)
}

func newClient(config *rest.Config) (*Client, error) {
	// One catalog read per launch; keep the client polite.
	config.QPS = 5.0
	config.Burst = 10
	config.Timeout = 10 * time.Second
	config.UserAgent = "citizen-dojo"

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create clientset: %w", err)
	}

	return &Client{
		Clientset: clientset,
		Config:    config,
	}, nil
}

// ServerVersion returns the cluster's version string. It doubles as a
// reachability check before the catalog is read.
func (c *Client) ServerVersion() (string, error) {
	version, err := c.Clientset.Discovery().ServerVersion()
	if err != nil {
		return "", fmt.Errorf("cluster unreachable: %w", err)
	}
	return version.GitVersion, nil
}
