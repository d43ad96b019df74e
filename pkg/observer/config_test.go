package observer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithChainhookConfigCopies(t *testing.T) {
	base := Config{IngestionPort: DefaultIngestionPort}
	hooks := &ChainhookConfig{Predicates: []string{`{"uuid":"1"}`}}

	withHooks := base.WithChainhookConfig(hooks)

	assert.Nil(t, base.ChainhookConfig)
	assert.Same(t, hooks, withHooks.ChainhookConfig)
	assert.Equal(t, DefaultIngestionPort, withHooks.IngestionPort)
}
