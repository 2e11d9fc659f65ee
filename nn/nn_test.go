package nn_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bvisness/nonnull/handle"
	"github.com/bvisness/nonnull/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireCheckPanic runs f and returns the *nn.CheckError it panics with.
func requireCheckPanic(t *testing.T, f func()) (cerr *nn.CheckError) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, nn.ErrNil)
		require.ErrorAs(t, err, &cerr)
	}()
	f()
	return nil
}

func TestConstruction(t *testing.T) {
	t.Run("non-nil pointer", func(t *testing.T) {
		x := 10
		p := nn.FromPtr(&x)
		assert.Same(t, &x, p.Get())
		assert.Equal(t, 10, p.Value())
		assert.False(t, p.Nullable().IsNil())

		*p.Get() = 11
		assert.Equal(t, 11, x)
	})

	t.Run("nil pointer panics with the call site", func(t *testing.T) {
		var x *int
		cerr := requireCheckPanic(t, func() { nn.FromPtr(x) })
		assert.True(t, strings.HasSuffix(cerr.At.File, "nn_test.go"), cerr.At.File)
		assert.Positive(t, cerr.At.Line)
		assert.Contains(t, cerr.At.Func, "TestConstruction")
		assert.Equal(t, "nn check failed at "+cerr.At.String(), cerr.Error())
		assert.Equal(t, fmt.Sprintf("%s:%d", cerr.At.File, cerr.At.Line), cerr.At.String())
	})

	t.Run("generic constructor", func(t *testing.T) {
		x := 1
		p := nn.New[handle.Raw[int], int](handle.RawOf(&x))
		assert.Same(t, &x, p.Get())

		requireCheckPanic(t, func() { nn.New[handle.Raw[int], int](handle.Raw[int]{}) })
		requireCheckPanic(t, func() { nn.New[handle.Unique[int], int](handle.Unique[int]{}) })
	})

	t.Run("owning handles", func(t *testing.T) {
		u := nn.FromUnique(handle.NewUnique(new(int)))
		assert.Equal(t, 1, u.Nullable().UseCount())
		s := nn.FromShared(handle.NewShared(new(int)))
		assert.Equal(t, 1, s.Nullable().UseCount())

		requireCheckPanic(t, func() { nn.FromUnique(handle.NewUnique[int](nil)) })
		requireCheckPanic(t, func() { nn.FromShared(handle.Shared[int]{}) })
	})

	t.Run("moved-from unique handle", func(t *testing.T) {
		h := handle.NewUnique(new(int))
		_ = h.Move()
		requireCheckPanic(t, func() { nn.FromUnique(h) })
	})
}

func TestAccess(t *testing.T) {
	type point struct{ X, Y int }

	t.Run("field access", func(t *testing.T) {
		p := nn.FromPtr(&point{1, 2})
		assert.Equal(t, 2, p.Get().Y)
		p.Get().X = 5
		assert.Equal(t, point{5, 2}, p.Value())
	})

	t.Run("nullable aliases without giving up ownership", func(t *testing.T) {
		s := nn.MakeShared(point{})
		h := s.Nullable()
		assert.Same(t, s.Get(), h.Get())
		assert.Equal(t, 1, s.Nullable().UseCount())
	})

	t.Run("take moves the representation out", func(t *testing.T) {
		u := nn.MakeUnique(point{3, 4})
		ptr := u.Get()
		h := u.Take()
		assert.Same(t, ptr, h.Get())
		assert.Equal(t, 1, h.UseCount())
		assert.True(t, u.Nullable().IsNil())
	})

	t.Run("close releases ownership", func(t *testing.T) {
		deleted := 0
		s := nn.FromShared(handle.NewSharedFunc(&point{}, func(*point) error {
			deleted++
			return nil
		}))
		other := nn.CloneShared(s)
		require.NoError(t, s.Close())
		assert.Zero(t, deleted)
		require.NoError(t, other.Close())
		assert.Equal(t, 1, deleted)
	})

	t.Run("close on a plain pointer", func(t *testing.T) {
		p := nn.Addr(&point{})
		require.NoError(t, p.Close())
		assert.True(t, p.Nullable().IsNil())
	})
}
