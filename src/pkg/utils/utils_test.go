package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertString(t *testing.T) {
	assert.Equal(t, "plain", ConvertString("plain"))
	assert.Equal(t, "bytes", ConvertString([]byte("bytes")))
	assert.Equal(t, "boom", ConvertString(errors.New("boom")))
	assert.Equal(t, `{"a":1}`, ConvertString(map[string]int{"a": 1}))
}

func TestConvertInt(t *testing.T) {
	assert.Equal(t, 7, ConvertInt(7))
	assert.Equal(t, 7, ConvertInt(int64(7)))
	assert.Equal(t, 7, ConvertInt(7.9))
	assert.Equal(t, 7, ConvertInt("7"))
	assert.Equal(t, 0, ConvertInt("not a number"))
	assert.Equal(t, 0, ConvertInt(nil))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "25m", FormatDuration(25))
	assert.Equal(t, "1h 5m", FormatDuration(65))
	assert.Equal(t, "2h 0m", FormatDuration(120))
}
