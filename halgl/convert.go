// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package halgl

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/gldebug/gl"
)

// expand5 and friends widen an n-bit channel to 8 bits by replicating
// its high bits into the low ones.
func expand5(v uint16) byte { return byte(v<<3 | v>>2) }
func expand6(v uint16) byte { return byte(v<<2 | v>>4) }
func expand4(v uint16) byte { return byte(v<<4 | v) }

// toRGBA converts a tightly packed WebGL image to RGBA8.
func toRGBA(format, typ gl.Enum, width, height int, pixels []byte) ([]byte, error) {
	n := width * height
	out := make([]byte, n*4)

	switch typ {
	case gl.UNSIGNED_BYTE:
		var bpp int
		switch format {
		case gl.RGBA:
			bpp = 4
		case gl.RGB:
			bpp = 3
		case gl.LUMINANCE_ALPHA:
			bpp = 2
		case gl.LUMINANCE, gl.ALPHA:
			bpp = 1
		default:
			return nil, fmt.Errorf("%w: format 0x%x", ErrUnsupportedFormat, uint32(format))
		}
		if len(pixels) < n*bpp {
			return nil, fmt.Errorf("halgl: short image: %d bytes for %dx%d", len(pixels), width, height)
		}
		for i := 0; i < n; i++ {
			src := pixels[i*bpp : (i+1)*bpp]
			dst := out[i*4 : i*4+4]
			switch format {
			case gl.RGBA:
				copy(dst, src)
			case gl.RGB:
				dst[0], dst[1], dst[2], dst[3] = src[0], src[1], src[2], 255
			case gl.LUMINANCE_ALPHA:
				dst[0], dst[1], dst[2], dst[3] = src[0], src[0], src[0], src[1]
			case gl.LUMINANCE:
				dst[0], dst[1], dst[2], dst[3] = src[0], src[0], src[0], 255
			case gl.ALPHA:
				dst[3] = src[0]
			}
		}
		return out, nil

	case gl.UNSIGNED_SHORT_5_6_5, gl.UNSIGNED_SHORT_4_4_4_4, gl.UNSIGNED_SHORT_5_5_5_1:
		if len(pixels) < n*2 {
			return nil, fmt.Errorf("halgl: short image: %d bytes for %dx%d", len(pixels), width, height)
		}
		for i := 0; i < n; i++ {
			v := binary.LittleEndian.Uint16(pixels[i*2:])
			dst := out[i*4 : i*4+4]
			switch typ {
			case gl.UNSIGNED_SHORT_5_6_5:
				dst[0], dst[1], dst[2], dst[3] = expand5(v>>11), expand6(v>>5&0x3f), expand5(v&0x1f), 255
			case gl.UNSIGNED_SHORT_4_4_4_4:
				dst[0], dst[1], dst[2], dst[3] = expand4(v>>12), expand4(v>>8&0xf), expand4(v>>4&0xf), expand4(v&0xf)
			case gl.UNSIGNED_SHORT_5_5_5_1:
				dst[0], dst[1], dst[2] = expand5(v>>11), expand5(v>>6&0x1f), expand5(v>>1&0x1f)
				if v&1 != 0 {
					dst[3] = 255
				}
			}
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: type 0x%x", ErrUnsupportedFormat, uint32(typ))
}

// spirvWords converts a SPIR-V binary to its little-endian 32-bit words.
func spirvWords(module []byte) ([]uint32, error) {
	if len(module) == 0 || len(module)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSPIRV, len(module))
	}
	words := make([]uint32, len(module)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(module[i*4:])
	}
	return words, nil
}
