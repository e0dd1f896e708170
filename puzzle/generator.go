package puzzle

import "math/rand/v2"

// ColorPair names the colors of a pair to be generated.
type ColorPair struct {
	Primary   Color
	Secondary Color
}

// Generator supplies the colors of upcoming pairs. Next returns false once the
// puzzle has no more pairs to offer.
type Generator interface {
	Next() (ColorPair, bool)
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func() (ColorPair, bool)

func (f GeneratorFunc) Next() (ColorPair, bool) { return f() }

// Sequence yields the given pairs in order and then stops.
func Sequence(pairs ...ColorPair) Generator {
	i := 0
	return GeneratorFunc(func() (ColorPair, bool) {
		if i >= len(pairs) {
			return ColorPair{}, false
		}
		p := pairs[i]
		i++
		return p, true
	})
}

// RandomColors yields n pairs drawn uniformly from palette, or from every color
// when palette is empty.
func RandomColors(rng *rand.Rand, n int, palette ...Color) Generator {
	if len(palette) == 0 {
		palette = Palette
	}
	return GeneratorFunc(func() (ColorPair, bool) {
		if n <= 0 {
			return ColorPair{}, false
		}
		n--
		return ColorPair{
			Primary:   palette[rng.IntN(len(palette))],
			Secondary: palette[rng.IntN(len(palette))],
		}, true
	})
}
