package render

import "image/color"

// ageFadeStep is how much brightness a cell loses per generation of age.
const ageFadeStep = 10

// ageFadeFloor keeps long-lived cells visible instead of fading to black.
const ageFadeFloor = 64

// ageShade maps a viewport cell value (0 dead, age+1 alive) to a
// brightness in [0, 255]. Newborns render at full brightness and fade
// toward the floor as they age.
func ageShade(v uint8) uint8 {
	if v == 0 {
		return 0
	}
	age := int(v) - 1
	shade := 255 - age*ageFadeStep
	if shade < ageFadeFloor {
		shade = ageFadeFloor
	}
	return uint8(shade)
}

// fillAgeRGBA converts viewport cell values into RGBA pixels in buf. on
// tints alive cells, scaled by the age shade; off fills dead cells.
func fillAgeRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, _ := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c == 0 {
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
			continue
		}
		shade := uint32(ageShade(c))
		buf[base+0] = uint8((rOn >> 8) * shade / 255)
		buf[base+1] = uint8((gOn >> 8) * shade / 255)
		buf[base+2] = uint8((bOn >> 8) * shade / 255)
		buf[base+3] = 255
	}
}
