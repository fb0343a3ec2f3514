package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func TestParseConfigMapRef(t *testing.T) {
	ref, err := ParseConfigMapRef("dojo/catalog")
	require.NoError(t, err)
	assert.Equal(t, ConfigMapRef{Namespace: "dojo", Name: "catalog"}, ref)
	assert.Equal(t, "dojo/catalog", ref.String())

	ref, err = ParseConfigMapRef("catalog")
	require.NoError(t, err)
	assert.Equal(t, "default", ref.Namespace)

	for _, bad := range []string{"", "/", "dojo/", "/catalog"} {
		_, err := ParseConfigMapRef(bad)
		assert.Error(t, err, bad)
	}
}

func TestLoadConfigMap(t *testing.T) {
	clientset := fake.NewClientset(
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "catalog", Namespace: "dojo"},
			Data:       map[string]string{ConfigMapKey: sampleCatalog},
		},
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "empty", Namespace: "dojo"},
		},
	)
	ctx := context.Background()

	c, err := LoadConfigMap(ctx, clientset, ConfigMapRef{Namespace: "dojo", Name: "catalog"})
	require.NoError(t, err)
	assert.Equal(t, "g2", NewResolver(c).ResolveNext("quiz", "g1", nil).ID)

	_, err = LoadConfigMap(ctx, clientset, ConfigMapRef{Namespace: "dojo", Name: "empty"})
	assert.ErrorContains(t, err, ConfigMapKey)

	_, err = LoadConfigMap(ctx, clientset, ConfigMapRef{Namespace: "dojo", Name: "missing"})
	assert.Error(t, err)
}
