package rep_test

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/fxprint/rep"
	"github.com/calebcase/fxprint/snapshot"
)

// chain wraps leaf in n structs.
func chain(n int, leaf *snapshot.Node) *snapshot.Node {
	v := leaf
	for i := 0; i < n; i++ {
		v = snapshot.Wrap(fmt.Sprintf("wrapper%d", i), rep.DefaultField, v)
	}

	return v
}

func TestUnwrap(t *testing.T) {
	t.Run("primitive", func(t *testing.T) {
		leaf := snapshot.Int("int", 10)

		got, steps, err := rep.Unwrapper{}.Unwrap(leaf)
		require.NoError(t, err)
		require.Zero(t, steps)
		require.Same(t, leaf, got)
	})

	t.Run("first field primitive", func(t *testing.T) {
		leaf := snapshot.Int("int", 4096)

		got, steps, err := rep.Unwrapper{}.Unwrap(chain(1, leaf))
		require.NoError(t, err)
		require.Equal(t, 1, steps)
		require.Same(t, leaf, got)
	})

	for _, n := range []int{2, 3, 10, 64} {
		t.Run(fmt.Sprintf("depth %d", n), func(t *testing.T) {
			leaf := snapshot.Int("int", int64(n))

			got, steps, err := rep.Unwrapper{}.Unwrap(chain(n, leaf))
			require.NoError(t, err)
			require.Equal(t, n, steps)
			require.Same(t, leaf, got)
		})
	}

	t.Run("typedef leaf", func(t *testing.T) {
		leaf := snapshot.Typedef("int32_t", snapshot.Int("int", 1))

		got, steps, err := rep.Unwrapper{}.Unwrap(chain(2, leaf))
		require.NoError(t, err)
		require.Equal(t, 2, steps)
		require.Same(t, leaf, got)
	})

	t.Run("custom field", func(t *testing.T) {
		leaf := snapshot.Int("int", 1)
		v := snapshot.Wrap("outer", "m_value", snapshot.Wrap("inner", "m_value", leaf))

		got, steps, err := rep.Unwrapper{Field: "m_value"}.Unwrap(v)
		require.NoError(t, err)
		require.Equal(t, 2, steps)
		require.Same(t, leaf, got)

		_, _, err = rep.Unwrapper{}.Unwrap(v)
		require.Error(t, err)
		require.True(t, rep.UnwrapError.Has(err))
	})
}

func TestUnwrapFailure(t *testing.T) {
	type TC struct {
		name  string
		value *snapshot.Node
		steps int
	}

	loop := snapshot.Wrap("loop", rep.DefaultField, nil)
	loop.Fields[rep.DefaultField] = loop

	tcs := []TC{
		{
			name:  "missing field",
			value: snapshot.Wrap("outer", "value", snapshot.Int("int", 1)),
			steps: 0,
		},
		{
			name: "leaf without field",
			value: chain(2, &snapshot.Node{
				TypeName: "float",
				Kind:     "float",
			}),
			steps: 2,
		},
		{
			name:  "cycle",
			value: loop,
			steps: rep.DefaultMaxDepth,
		},
		{
			name:  "too deep",
			value: chain(rep.DefaultMaxDepth+1, snapshot.Int("int", 1)),
			steps: rep.DefaultMaxDepth,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, steps, err := rep.Unwrapper{}.Unwrap(tc.value)
			require.Error(t, err)
			require.True(t, rep.UnwrapError.Has(err), "%+v", err)
			require.Nil(t, got)
			require.Equal(t, tc.steps, steps)
		})
	}

	t.Run("bound", func(t *testing.T) {
		v := chain(5, snapshot.Int("int", 1))

		_, steps, err := rep.Unwrapper{MaxDepth: 4}.Unwrap(v)
		require.Error(t, err)
		require.True(t, rep.UnwrapError.Has(err))
		require.Equal(t, 4, steps)

		_, steps, err = rep.Unwrapper{MaxDepth: 5}.Unwrap(v)
		if err != nil {
			t.Logf("Value: %s\n", spew.Sdump(v))
		}
		require.NoError(t, err)
		require.Equal(t, 5, steps)
	})

	t.Run("nil", func(t *testing.T) {
		_, _, err := rep.Unwrapper{}.Unwrap(nil)
		require.Error(t, err)
		require.True(t, rep.UnwrapError.Has(err))
	})
}
