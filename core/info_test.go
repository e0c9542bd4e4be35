//go:build unit
// +build unit

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetInfo(t *testing.T) {
	SetVersion(&Conf{Version: "v0.1.0"}, "")
	info := SetInfo(&Conf{LogLevel: "debug", CatalogPath: "catalog.toml", Seed: 5})
	assert.Same(t, CurrentInfo, info)
	assert.Equal(t, "v0.1.0", info.Version)
	assert.Equal(t, "debug", info.Conf.LogLevel)
	assert.Equal(t, "catalog.toml", info.Conf.CatalogPath)
}
