package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/centipede/internal/domain/entity"
)

func TestBitmap_EverySpriteHasPattern(t *testing.T) {
	sprites := []entity.SpriteID{
		entity.SpriteHead,
		entity.SpriteBody,
		entity.SpriteMushroom,
		entity.SpriteMushroomDamaged1,
		entity.SpriteMushroomDamaged2,
		entity.SpriteMushroomDamaged3,
		entity.SpriteSpider,
		entity.SpritePlayer,
		entity.SpriteLaser,
	}

	for _, id := range sprites {
		t.Run(id.String(), func(t *testing.T) {
			bmp, err := Bitmap(id)
			require.NoError(t, err)
			assert.Positive(t, bmp.Bounds().Dx())
			assert.Positive(t, bmp.Bounds().Dy())
		})
	}
}

func TestBitmap_None(t *testing.T) {
	_, err := Bitmap(entity.SpriteNone)
	assert.Error(t, err)
}

func TestBitmap_Transparency(t *testing.T) {
	bmp, err := Bitmap(entity.SpriteHead)
	require.NoError(t, err)

	// ".rggggr." leaves the top corners clear
	assert.Equal(t, uint8(0), bmp.RGBAAt(0, 0).A)
	assert.Equal(t, Palette['r'], bmp.RGBAAt(1, 0))
}

// Every damage tier has fewer opaque pixels than the one before it
func TestBitmap_MushroomTiersShrink(t *testing.T) {
	tiers := []entity.SpriteID{
		entity.SpriteMushroom,
		entity.SpriteMushroomDamaged1,
		entity.SpriteMushroomDamaged2,
		entity.SpriteMushroomDamaged3,
	}

	prev := -1
	for _, id := range tiers {
		bmp, err := Bitmap(id)
		require.NoError(t, err)

		opaque := 0
		b := bmp.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if bmp.RGBAAt(x, y).A > 0 {
					opaque++
				}
			}
		}
		if prev >= 0 {
			assert.Less(t, opaque, prev, id.String())
		}
		prev = opaque
	}
}
