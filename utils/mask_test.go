package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j****n@x.com", MaskEmail("jordan@x.com"))
	assert.Equal(t, "**@x.com", MaskEmail("jo@x.com"))
	assert.Equal(t, "*@x.com", MaskEmail("j@x.com"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}

func TestMaskDigits(t *testing.T) {
	assert.Equal(t, "**** **** **** 4242", MaskDigits("4242424242424242"))
	assert.Equal(t, "**** **** **** 4242", MaskDigits("4242 4242 4242 4242"))
	assert.Equal(t, "**** **** **** 4242", MaskDigits("4242-4242-4242-4242"))
	assert.Equal(t, "1234", MaskDigits("1234"))
}

func TestNewOrderNumber(t *testing.T) {
	n := NewOrderNumber()
	assert.True(t, strings.HasPrefix(n, "SO-"))
	assert.Len(t, n, 11)
	assert.Equal(t, strings.ToUpper(n), n)
	assert.NotEqual(t, n, NewOrderNumber())
}

func TestParseIDList(t *testing.T) {
	ids, err := ParseIDList("3,7,12")
	assert.NoError(t, err)
	assert.Equal(t, []uint{3, 7, 12}, ids)

	ids, err = ParseIDList(" 3 , 7 ")
	assert.NoError(t, err)
	assert.Equal(t, []uint{3, 7}, ids)

	ids, err = ParseIDList("")
	assert.NoError(t, err)
	assert.Nil(t, ids)

	_, err = ParseIDList("3,x")
	assert.Error(t, err)
}
