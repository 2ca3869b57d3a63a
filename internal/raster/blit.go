package raster

// BlitGlyph composites a single-channel coverage bitmap (as produced
// by a font rasterizer) into dst at (originX, originY), treating each
// coverage byte as an alpha multiplier on color.
func BlitGlyph(dst *Buffer, originX, originY int, width, height int, coverage []uint8, color Color, mask CoverageMask) {
	for row := 0; row < height; row++ {
		y := originY + row
		if y < 0 || y >= dst.Height {
			continue
		}
		for col := 0; col < width; col++ {
			x := originX + col
			if x < 0 || x >= dst.Width {
				continue
			}
			cov := coverage[row*width+col]
			if cov == 0 {
				continue
			}
			c := color
			c.A = uint8(uint32(c.A) * uint32(cov) / 255)
			if mask != nil {
				mcov := mask(x, y)
				if mcov == 0 {
					continue
				}
				if mcov != 255 {
					c.A = uint8(uint32(c.A) * uint32(mcov) / 255)
				}
			}
			dst.BlendPixel(x, y, c)
		}
	}
}

// BlitImage source-over composites a decoded RGBA8888 source image
// into dst, nearest-neighbor-sampled to fit destW x destH at
// (originX, originY). Used by the extension image-layer compositing
// path.
func BlitImage(dst *Buffer, originX, originY, destW, destH int, src []byte, srcW, srcH int, mask CoverageMask) {
	if srcW == 0 || srcH == 0 || destW == 0 || destH == 0 {
		return
	}
	for row := 0; row < destH; row++ {
		y := originY + row
		if y < 0 || y >= dst.Height {
			continue
		}
		sy := row * srcH / destH
		if sy >= srcH {
			sy = srcH - 1
		}
		for col := 0; col < destW; col++ {
			x := originX + col
			if x < 0 || x >= dst.Width {
				continue
			}
			sx := col * srcW / destW
			if sx >= srcW {
				sx = srcW - 1
			}
			si := (sy*srcW + sx) * 4
			c := Color{R: src[si], G: src[si+1], B: src[si+2], A: src[si+3]}
			if mask != nil {
				mcov := mask(x, y)
				if mcov == 0 {
					continue
				}
				if mcov != 255 {
					c.A = uint8(uint32(c.A) * uint32(mcov) / 255)
				}
			}
			dst.BlendPixel(x, y, c)
		}
	}
}
