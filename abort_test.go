package ember

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errAbortTest = errors.New("foo")

func TestAssert(t *testing.T) {
	s := New()

	var exc Exception
	s.Guard(&exc, MaskAll, func() {
		s.Assert(errAbortTest)
	})

	assert.Equal(t, Exception{
		Reason:  Error,
		Code:    GenericError,
		Message: "foo",
	}, exc)
}

func TestNilAssert(t *testing.T) {
	s := New()

	var exc Exception
	s.Guard(&exc, MaskAll, func() {
		s.Assert(nil)
	})

	assert.True(t, exc.IsNone())
}

func TestAbort(t *testing.T) {
	s := New()

	var exc Exception
	s.Guard(&exc, MaskAll, func() {
		s.Abort(UnsupportedError, nil)
	})

	assert.Equal(t, Exception{
		Reason: Error,
		Code:   UnsupportedError,
	}, exc)
	assert.Equal(t, "unsupported", exc.Error())
}

func TestCatch(t *testing.T) {
	s := New()

	var list []string
	err := s.Catch(func() {
		s.Cleanups().Register(func() {
			list = append(list, "cleanup")
		})

		s.ThrowError(NotFoundError, "missing %d", 42)
	})
	assert.Error(t, err)
	assert.Equal(t, []string{"cleanup"}, list)

	var exc Exception
	assert.True(t, errors.As(err, &exc))
	assert.Equal(t, Exception{
		Reason:  Error,
		Code:    NotFoundError,
		Message: "missing 42",
	}, exc)

	err = s.Catch(func() {})
	assert.NoError(t, err)
}

func TestCatchOtherPanic(t *testing.T) {
	s := New()

	assert.PanicsWithValue(t, errAbortTest, func() {
		_ = s.Catch(func() {
			panic(errAbortTest)
		})
	})
	assert.Equal(t, 0, s.Depth())
}
