package nn_test

import (
	"testing"

	"github.com/bvisness/nonnull/handle"
	"github.com/bvisness/nonnull/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// box is a representation defined outside package handle.
type box[T any] struct {
	p *T
}

func (b box[T]) IsNil() bool { return b.p == nil }
func (b box[T]) Get() *T     { return b.p }

func TestClassify(t *testing.T) {
	type Case struct {
		from, to handle.Kind
		consume  bool
		res      nn.Conversion
		ok       bool
	}
	cases := []Case{
		{handle.KindRaw, handle.KindRaw, false, nn.ImplicitCopy, true},
		{handle.KindRaw, handle.KindRaw, true, nn.ImplicitCopy, true},
		{handle.KindShared, handle.KindShared, false, nn.ImplicitCopy, true},
		{handle.KindShared, handle.KindShared, true, nn.ImplicitMove, true},
		{handle.KindUnique, handle.KindUnique, true, nn.ImplicitMove, true},
		{handle.KindUnique, handle.KindUnique, false, 0, false},
		{handle.KindUnique, handle.KindShared, true, nn.ImplicitMove, true},
		{handle.KindUnique, handle.KindShared, false, 0, false},
		{handle.KindShared, handle.KindUnique, true, 0, false},
		{handle.KindRaw, handle.KindUnique, false, nn.ExplicitCopy, true},
		{handle.KindRaw, handle.KindShared, true, nn.ExplicitCopy, true},
		{handle.KindShared, handle.KindRaw, false, nn.ExplicitCopy, true},
		{handle.KindUnique, handle.KindRaw, false, nn.ExplicitCopy, true},
	}

	for _, c := range cases {
		t.Run(c.from.String()+" to "+c.to.String(), func(t *testing.T) {
			res, ok := nn.Classify(c.from, c.to, c.consume)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.res, res)
		})
	}

	assert.True(t, nn.ExplicitMove.Explicit())
	assert.True(t, nn.ExplicitMove.Consumes())
	assert.False(t, nn.ImplicitCopy.Explicit())
	assert.False(t, nn.ExplicitCopy.Consumes())
	assert.Equal(t, "implicit move", nn.ImplicitMove.String())
}

func TestConversionsKeepIdentity(t *testing.T) {
	t.Run("move unique", func(t *testing.T) {
		u := nn.MakeUnique(1)
		ptr := u.Get()
		stale := u.Nullable()

		moved := nn.Move(&u)
		assert.Same(t, ptr, moved.Get())
		assert.True(t, stale.IsNil())
		assert.True(t, u.Nullable().IsNil())
	})

	t.Run("move shared", func(t *testing.T) {
		s := nn.MakeShared(1)
		ptr := s.Get()
		moved := nn.Move(&s)
		assert.Same(t, ptr, moved.Get())
		assert.Equal(t, 1, moved.Nullable().UseCount())
	})

	t.Run("clone shared", func(t *testing.T) {
		s := nn.MakeShared("a")
		c := nn.CloneShared(s)
		assert.Same(t, s.Get(), c.Get())
		assert.Equal(t, 2, s.Nullable().UseCount())
	})

	t.Run("unique to shared keeps the deleter", func(t *testing.T) {
		deleted := 0
		x := 3
		u := nn.FromUnique(handle.NewUniqueFunc(&x, func(*int) error {
			deleted++
			return nil
		}))
		s := nn.ToShared(&u)
		assert.Same(t, &x, s.Get())
		assert.True(t, u.Nullable().IsNil())

		require.NoError(t, s.Close())
		assert.Equal(t, 1, deleted)
	})

	t.Run("adopt", func(t *testing.T) {
		x, y := 1, 2
		u := nn.AdoptUnique(nn.FromPtr(&x))
		assert.Same(t, &x, u.Get())
		s := nn.AdoptShared(nn.FromPtr(&y))
		assert.Same(t, &y, s.Get())
		assert.Equal(t, 1, s.Nullable().UseCount())
	})

	t.Run("borrow", func(t *testing.T) {
		s := nn.MakeShared(4)
		b := nn.Borrow(s)
		assert.Same(t, s.Get(), b.Get())
		assert.Equal(t, 1, s.Nullable().UseCount())
	})

	t.Run("copy into a foreign representation", func(t *testing.T) {
		x := 5
		p := nn.FromPtr(&x)
		b := nn.ConvertCopy(p, func(r handle.Raw[int]) box[int] { return box[int]{r.Get()} })
		assert.Same(t, &x, b.Get())
		assert.Same(t, &x, p.Get())
	})

	t.Run("faulty conversion panics", func(t *testing.T) {
		x := 5
		p := nn.Addr(&x)
		requireCheckPanic(t, func() {
			nn.ConvertCopy(p, func(handle.Raw[int]) box[int] { return box[int]{} })
		})
	})

	t.Run("move into a foreign representation", func(t *testing.T) {
		u := nn.MakeUnique(6)
		ptr := u.Get()
		b := nn.ConvertMove(&u, func(h handle.Unique[int]) box[int] { return box[int]{h.Release()} })
		assert.Same(t, ptr, b.Get())
		assert.True(t, u.Nullable().IsNil())
	})
}

func TestAlias(t *testing.T) {
	type wheel struct{ size int }
	type car struct{ wheels [4]wheel }

	deleted := 0
	c := nn.FromShared(handle.NewSharedFunc(&car{wheels: [4]wheel{{16}, {16}, {17}, {17}}},
		func(*car) error {
			deleted++
			return nil
		}))
	w := nn.Alias(c, nn.FromPtr(&c.Get().wheels[2]))

	assert.Same(t, &c.Get().wheels[2], w.Get())
	assert.Equal(t, 17, w.Get().size)
	assert.True(t, handle.SameOwner(c.Nullable(), w.Nullable()))

	require.NoError(t, c.Close())
	assert.Zero(t, deleted)
	assert.Equal(t, 17, w.Value().size)
	require.NoError(t, w.Close())
	assert.Equal(t, 1, deleted)
}
