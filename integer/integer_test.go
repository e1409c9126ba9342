package integer

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromMemory(t *testing.T) {
	type TC struct {
		name   string
		data   []byte
		order  binary.ByteOrder
		signed bool
		blk    Block
	}

	tcs := []TC{
		{
			name:  "+0",
			data:  []byte{0b0000_0000},
			order: binary.LittleEndian,
			blk: Block{
				Value: []byte{0b0000_0000},
			},
		},
		{
			name:  "+4096",
			data:  []byte{0b0000_0000, 0b0001_0000, 0b0000_0000, 0b0000_0000},
			order: binary.LittleEndian,
			blk: Block{
				Value: []byte{0b0001_0000, 0b0000_0000},
			},
		},
		{
			name:  "+4096",
			data:  []byte{0b0000_0000, 0b0000_0000, 0b0001_0000, 0b0000_0000},
			order: binary.BigEndian,
			blk: Block{
				Value: []byte{0b0001_0000, 0b0000_0000},
			},
		},
		{
			name:   "-1",
			data:   []byte{0b1111_1111, 0b1111_1111},
			order:  binary.LittleEndian,
			signed: true,
			blk: Block{
				Value:    []byte{0b0000_0001},
				Negative: true,
			},
		},
		{
			name:   "+65535",
			data:   []byte{0b1111_1111, 0b1111_1111},
			order:  binary.LittleEndian,
			signed: false,
			blk: Block{
				Value: []byte{0b1111_1111, 0b1111_1111},
			},
		},
		{
			name:   "-128",
			data:   []byte{0b1000_0000},
			order:  binary.BigEndian,
			signed: true,
			blk: Block{
				Value:    []byte{0b1000_0000},
				Negative: true,
			},
		},
		{
			name:   "+127",
			data:   []byte{0b0111_1111},
			order:  binary.BigEndian,
			signed: true,
			blk: Block{
				Value: []byte{0b0111_1111},
			},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			blk, err := FromMemory(tc.data, tc.order, tc.signed)
			require.NoError(t, err)
			require.Equal(t, tc.blk, blk)

			// These checks ensure that our test case name matches the value.
			i := new(big.Int)
			err = i.UnmarshalText([]byte(tc.name))
			require.NoError(t, err)
			require.Equal(t, 0, i.Cmp(blk.Big()))
		})
	}

	t.Run("empty", func(t *testing.T) {
		_, err := FromMemory(nil, binary.LittleEndian, true)
		require.Error(t, err)
		require.True(t, Error.Has(err))
	})
}

func TestParse(t *testing.T) {
	for _, s := range []string{"0", "10", "-10", "4096", "-340282366920938463463374607431768211456"} {
		t.Run(s, func(t *testing.T) {
			blk, err := Parse(s)
			require.NoError(t, err)
			require.Equal(t, s, blk.String())
		})
	}

	t.Run("hex", func(t *testing.T) {
		blk, err := Parse("0x1000")
		require.NoError(t, err)
		require.Equal(t, FromInt64(4096), blk)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := Parse("twelve")
		require.Error(t, err)
		require.True(t, Error.Has(err))
	})
}
