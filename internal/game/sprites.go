package game

import "github.com/jackmiller2708/bit-bound/internal/render"

// Built-in sprites used when no compiled assets are available. Rows are
// palette-index digits; 0 is transparent.

var shipArt = []string{
	"00000000",
	"00220000",
	"02233000",
	"22333330",
	"22333330",
	"02233000",
	"00220000",
	"00000000",
}

var enemyArt = []string{
	"00000000",
	"00111100",
	"01311310",
	"01111110",
	"01133110",
	"00111100",
	"00100100",
	"00000000",
}

// BuiltinShip returns the fallback player ship sprite.
func BuiltinShip() *render.Sprite {
	return mustSpriteFromArt(shipArt)
}

// BuiltinEnemy returns the fallback enemy sprite.
func BuiltinEnemy() *render.Sprite {
	return mustSpriteFromArt(enemyArt)
}

func mustSpriteFromArt(art []string) *render.Sprite {
	h := len(art)
	w := len(art[0])

	indexed := make([]uint8, 0, w*h)
	for _, row := range art {
		for _, c := range row {
			indexed = append(indexed, uint8(c-'0'))
		}
	}

	s, err := render.NewSprite(w, h, render.EncodeIndices(indexed, w, h))
	if err != nil {
		panic(err)
	}
	return s
}
