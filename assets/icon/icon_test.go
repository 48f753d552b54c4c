package icon

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSizes(t *testing.T) {
	imgs := Generate()
	require.Len(t, imgs, 2)
	assert.Equal(t, 64, imgs[0].Bounds().Dx())
	assert.Equal(t, 32, imgs[1].Bounds().Dy())
}

func TestGenerateIsOpaqueWithForm(t *testing.T) {
	img := generate(64)
	_, _, _, a := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xFFFF), a)
	// The dress form's bust sits on the vertical center line.
	assert.Equal(t, color.RGBAModel.Convert(bone), img.At(32, 20))
}
