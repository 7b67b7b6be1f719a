package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeEFKey(t *testing.T) {
	t.Run("known vectors", func(t *testing.T) {
		assert.Equal(t,
			"978082414ae50d55a657de24b99c0ee103e074e8bb09e82d3e82502cb41a8e15",
			ComputeEFKey("EUROPE", "MILITARY_OP"))
		assert.Equal(t,
			"f0d6a19c844bcd7af0fdfb65c226f99d3a8ddeb963ebe1345de7bcdb6e24b8ca",
			ComputeEFKey("GLOBAL", "OTHER"))
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, ComputeEFKey("MIDEAST", "DIPLOMACY"), ComputeEFKey("MIDEAST", "DIPLOMACY"))
	})

	t.Run("delimiter prevents concatenation collisions", func(t *testing.T) {
		assert.NotEqual(t, ComputeEFKey("EUROPE", "MILITARY_OP"), ComputeEFKey("EUROPEMILITARY", "_OP"))
	})

	t.Run("distinct pairs distinct keys", func(t *testing.T) {
		assert.NotEqual(t, ComputeEFKey("EUROPE", "CYBER"), ComputeEFKey("MIDEAST", "CYBER"))
		assert.NotEqual(t, ComputeEFKey("EUROPE", "CYBER"), ComputeEFKey("EUROPE", "ENERGY"))
	})
}
