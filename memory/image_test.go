package memory

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageLoadStore(t *testing.T) {
	assert := assert.New(t)

	var im Image

	err := im.Store(42, -17)
	assert.NoError(err)

	value, err := im.Load(42)
	assert.NoError(err)
	assert.Equal(int16(-17), value)

	value, err = im.Load(0)
	assert.NoError(err)
	assert.Equal(int16(0), value)
}

func TestImageBounds(t *testing.T) {
	assert := assert.New(t)

	var im Image

	table := [](struct {
		name string
		addr int16
	}){
		{"negative", -1},
		{"past_end", 100},
		{"far", 9999},
	}

	for _, entry := range table {
		_, err := im.Load(entry.addr)
		assert.True(errors.Is(err, ErrAddressRange(0)), entry.name)

		err = im.Store(entry.addr, 1)
		assert.True(errors.Is(err, ErrAddressRange(0)), entry.name)
	}
}

func TestImageString(t *testing.T) {
	assert := assert.New(t)

	var im Image
	im[0] = 901
	im[99] = -999

	text := im.String()
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	assert.Equal(10, len(lines))
	assert.Contains(lines[0], "901")
	assert.Contains(lines[9], "-999")
}
