package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	t.Run("BuildVersion", func(t *testing.T) {
		previous := Version
		t.Cleanup(func() { Version = previous })

		Version = "v1.2.3"
		assert.Equal(t, "v1.2.3", GetVersion())
	})

	t.Run("Fallback", func(t *testing.T) {
		previous := Version
		t.Cleanup(func() { Version = previous })

		Version = ""
		assert.NotEmpty(t, GetVersion())
	})
}
