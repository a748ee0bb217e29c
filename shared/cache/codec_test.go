package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec(t *testing.T) {
	t.Run("strings stay raw", func(t *testing.T) {
		payload, err := encode("plain")
		require.NoError(t, err)
		assert.Equal(t, "plain", string(payload))

		var out string
		require.NoError(t, decode(payload, &out))
		assert.Equal(t, "plain", out)
	})

	t.Run("structs go through json", func(t *testing.T) {
		payload, err := encode(map[string]int{"rooms": 3})
		require.NoError(t, err)
		assert.JSONEq(t, `{"rooms":3}`, string(payload))

		var out map[string]int
		require.NoError(t, decode(payload, &out))
		assert.Equal(t, 3, out["rooms"])
	})

	t.Run("unencodable values", func(t *testing.T) {
		_, err := encode(func() {})
		assert.Error(t, err)
	})

	t.Run("corrupt payload", func(t *testing.T) {
		var out map[string]int
		assert.Error(t, decode([]byte("{"), &out))
	})
}
