package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyDownCarriesArrowNames(t *testing.T) {
	up := KeyDown(KeyArrowUp, 0)
	down := KeyDown(KeyArrowDown, ModShift)

	assert.Equal(t, EventKeyDown, up.Type)
	assert.Equal(t, "Up", up.Key)
	assert.Equal(t, "Down", down.Key)
	assert.True(t, down.Mods.Has(ModShift))
	assert.Equal(t, "key_down", down.Type.String())
}
