package ember

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	assert.Equal(t, Mask(4), MaskInterrupt)
	assert.Equal(t, Mask(2), MaskError)
	assert.Equal(t, Mask(6), MaskAll)

	assert.True(t, MaskAll.Accepts(Interrupt))
	assert.True(t, MaskAll.Accepts(Error))
	assert.True(t, MaskError.Accepts(Error))
	assert.False(t, MaskError.Accepts(Interrupt))
	assert.False(t, MaskInterrupt.Accepts(Error))
	assert.False(t, MaskAll.Accepts(0))
	assert.False(t, Mask(0).Accepts(Error))
}

func TestReasonString(t *testing.T) {
	assert.Equal(t, "none", Reason(0).String())
	assert.Equal(t, "interrupt", Interrupt.String())
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "reason(-7)", Reason(-7).String())
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "no error", NoError.String())
	assert.Equal(t, "not found", NotFoundError.String())
	assert.Equal(t, "code(8)", FirstUserCode.String())
}

func TestExceptionError(t *testing.T) {
	assert.True(t, None.IsNone())
	assert.Equal(t, "none", None.Error())

	exc := Exception{Reason: Error, Code: ParseError, Message: "bad token"}
	assert.False(t, exc.IsNone())
	assert.Equal(t, "bad token", exc.Error())

	exc = Exception{Reason: Error, Code: ParseError}
	assert.Equal(t, "parse error", exc.Error())

	exc = Exception{Reason: Interrupt}
	assert.Equal(t, "interrupt", exc.Error())
}
