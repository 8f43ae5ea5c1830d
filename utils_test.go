// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package mediasoupclient

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone(t *testing.T) {
	t.Run("Plain Data", func(t *testing.T) {
		in := map[string]any{
			"codecs": []any{
				map[string]any{"mimeType": "audio/opus", "clockRate": float64(48000)},
			},
			"rtcp": map[string]any{"cname": "foo", "reducedSize": true},
		}

		out, err := Clone(&in, nil)
		require.NoError(t, err)
		assert.Equal(t, in, out)

		out["rtcp"].(map[string]any)["cname"] = "bar"
		out["codecs"] = append(out["codecs"].([]any), "extra")
		assert.Equal(t, "foo", in["rtcp"].(map[string]any)["cname"])
		assert.Len(t, in["codecs"], 1)
	})

	t.Run("Struct", func(t *testing.T) {
		in := []RTPEncodingParameters{{SSRC: 1111}, {SSRC: 2222}}

		out, err := Clone(&in, nil)
		require.NoError(t, err)
		assert.Equal(t, in, out)

		out[0].SSRC = 3333
		assert.Equal(t, uint32(1111), in[0].SSRC)
	})

	t.Run("Default", func(t *testing.T) {
		def := map[string]any{"foo": "bar"}

		out, err := Clone[map[string]any](nil, def)
		require.NoError(t, err)

		out["foo"] = "baz"
		assert.Equal(t, "baz", def["foo"], "default must be returned without copying")
	})

	t.Run("Unsupported Value", func(t *testing.T) {
		for _, in := range []any{
			math.NaN(),
			math.Inf(1),
			make(chan int),
			func() {},
		} {
			in := in
			_, err := Clone(&in, nil)
			assert.ErrorIs(t, err, ErrSerialization)

			var serializationErr *SerializationError
			assert.True(t, errors.As(err, &serializationErr))
		}
	})
}

func TestGenerateRandomNumber(t *testing.T) {
	for i := 0; i < 10000; i++ {
		n := GenerateRandomNumber()
		assert.GreaterOrEqual(t, n, 0)
		assert.LessOrEqual(t, n, maxRandomNumber)
	}
}
