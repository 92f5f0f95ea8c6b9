package builder_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.ytsaurus.tech/library/go/toolkit/builder"
)

func TestApplying(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		orig := newTestObject()
		eleven := builder.Applying(orig, func(o *testObject) { o.TestValue = 11 })
		assert.Equal(t, 11, eleven.TestValue)
		assert.Equal(t, 10, orig.TestValue)
	})

	t.Run("sequence", func(t *testing.T) {
		seq := builder.Applying(newTestObject(), func(o *testObject) { o.TestSequence = []int{5, 4, 3, 2, 1} })
		assert.Equal(t, []int{5, 4, 3, 2, 1}, seq.TestSequence)
	})

	t.Run("reference", func(t *testing.T) {
		orig := newTestObject()
		newClass := builder.Applying(orig, func(o *testObject) { o.TestClass = &myClass{Value: 25} })
		assert.Equal(t, 25, newClass.TestClass.Value)
		assert.Equal(t, 18, orig.TestClass.Value)

		newClassValue := builder.Applying(newClass, func(o *testObject) { o.TestClass.Value = 30 })
		assert.Equal(t, 30, newClassValue.TestClass.Value)

		// myClass is shared through the pointer, so the change is visible in every copy.
		assert.Equal(t, 30, newClass.TestClass.Value)
	})

	t.Run("equals_manual_copy", func(t *testing.T) {
		mutate := func(o *testObject) {
			o.TestValue++
			o.TestSequence = append([]int(nil), 9)
			o.JSON.Value = 0
		}

		orig := newTestObject()
		got := builder.Applying(orig, mutate)

		manual := newTestObject()
		mutate(&manual)

		assert.Empty(t, cmp.Diff(manual, got))
		assert.Empty(t, cmp.Diff(newTestObject(), orig))
	})
}

func TestApplyingE(t *testing.T) {
	res, err := builder.ApplyingE(newTestObject(), func(o *testObject) error {
		o.TestValue = 1
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.TestValue)

	boom := errors.New("boom")
	orig := newTestObject()
	_, err = builder.ApplyingE(orig, func(o *testObject) error {
		o.TestValue = 1
		return boom
	})
	assert.Same(t, boom, err)
	assert.Equal(t, 10, orig.TestValue)
}

func TestClone(t *testing.T) {
	orig := newTestObject()
	clone := builder.Clone(orig)
	assert.Empty(t, cmp.Diff(orig, clone))

	changed := builder.Applying(clone, func(o *testObject) {
		o.TestClass.Value = 99
		o.TestSequence[0] = 99
	})

	assert.Equal(t, 99, changed.TestClass.Value)
	assert.Equal(t, 18, orig.TestClass.Value)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, orig.TestSequence)
}

func TestCloneNil(t *testing.T) {
	t.Run("interface", func(t *testing.T) {
		var err error
		assert.NotPanics(t, func() { err = builder.Clone[error](nil) })
		assert.Nil(t, err)
	})
	t.Run("pointer", func(t *testing.T) {
		assert.Nil(t, builder.Clone((*myClass)(nil)))
	})
	t.Run("slice", func(t *testing.T) {
		assert.Nil(t, builder.Clone([]int(nil)))
	})
	t.Run("interface_holding_value", func(t *testing.T) {
		var v any = &myClass{Value: 1}
		clone := builder.Clone(v)
		require.IsType(t, &myClass{}, clone)
		assert.NotSame(t, v, clone)
		assert.Equal(t, 1, clone.(*myClass).Value)
	})
}
