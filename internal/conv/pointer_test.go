package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointerDereference(t *testing.T) {
	assert.EqualValues(t, "x", Dereference(Pointer("x")))
	assert.EqualValues(t, "", Dereference[string](nil))
	assert.EqualValues(t, 0, Dereference[int](nil))
}

func TestIsTrue(t *testing.T) {
	var testCases = []struct {
		flag   *bool
		expect bool
	}{
		{nil, false},
		{Pointer(false), false},
		{Pointer(true), true},
	}
	for i, tc := range testCases {
		assert.EqualValues(t, tc.expect, IsTrue(tc.flag), "case %d", i)
	}
}
