package registry

import (
	"context"
	"fmt"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// ConfigMapKey is the data key holding the catalog document.
const ConfigMapKey = "catalog.yaml"

// ConfigMapRef names a ConfigMap as namespace/name.
type ConfigMapRef struct {
	Namespace string
	Name      string
}

func (r ConfigMapRef) String() string {
	return r.Namespace + "/" + r.Name
}

// ParseConfigMapRef parses "namespace/name". A bare name uses the default
// namespace.
func ParseConfigMapRef(s string) (ConfigMapRef, error) {
	ns, name, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		ns, name = metav1.NamespaceDefault, ns
	}
	if ns == "" || name == "" {
		return ConfigMapRef{}, fmt.Errorf("invalid configmap reference %q, want namespace/name", s)
	}
	return ConfigMapRef{Namespace: ns, Name: name}, nil
}

// LoadConfigMap reads a catalog stored under ConfigMapKey in a ConfigMap.
func LoadConfigMap(ctx context.Context, clientset kubernetes.Interface, ref ConfigMapRef) (*Catalog, error) {
	cm, err := clientset.CoreV1().ConfigMaps(ref.Namespace).Get(ctx, ref.Name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get configmap %s: %w", ref, err)
	}
	data, ok := cm.Data[ConfigMapKey]
	if !ok {
		return nil, fmt.Errorf("configmap %s has no %q key", ref, ConfigMapKey)
	}
	c, err := ParseCatalog([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("configmap %s: %w", ref, err)
	}
	return c, nil
}
