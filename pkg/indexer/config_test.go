package indexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ordhook/ordhook/pkg/resources"
)

func TestThreadPoolCapacity(t *testing.T) {
	cfg := Config{Resources: resources.Config{CPUCoreAvailable: 8}}

	assert.Equal(t, uint(6), cfg.ThreadPoolCapacity())
}

func TestValidate(t *testing.T) {
	cfg := Config{DBPath: "/var/lib/ordhook", FirstInscriptionHeight: 767430}
	assert.NoError(t, cfg.Validate())

	cfg.DBPath = ""
	assert.ErrorIs(t, cfg.Validate(), ErrNoDBPath)

	cfg.DBPath = "/var/lib/ordhook"
	cfg.FirstInscriptionHeight = 0
	assert.Error(t, cfg.Validate())
}
