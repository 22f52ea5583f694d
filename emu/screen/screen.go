package screen

const (
	Width  = 64
	Height = 32
	Size   = Width * Height
)

// Framebuffer is the 64x32 monochrome display, one byte per pixel (0 or 1),
// row-major: index = row*Width + col.
type Framebuffer struct {
	pixels [Size]uint8
	dirty  bool
}

func (fb *Framebuffer) Clear() {
	fb.pixels = [Size]uint8{}
	fb.dirty = true
}

// Draw XORs an 8-pixel-wide sprite onto the grid with its top left corner at
// (x, y). Coordinates of every sprite pixel wrap around both edges.
// Returns true if any set pixel was turned off.
func (fb *Framebuffer) Draw(x, y uint8, sprite []uint8) bool {
	collision := false
	for row, line := range sprite {
		py := (int(y) + row) % Height
		for bit := 0; bit < 8; bit++ {
			if line&(0x80>>bit) == 0 {
				continue
			}
			px := (int(x) + bit) % Width
			idx := py*Width + px
			if fb.pixels[idx] == 1 {
				collision = true
			}
			fb.pixels[idx] ^= 1
		}
	}
	fb.dirty = true
	return collision
}

// Pixel reports whether the pixel at (x, y) is lit. Out of range
// coordinates wrap.
func (fb *Framebuffer) Pixel(x, y int) bool {
	x = ((x % Width) + Width) % Width
	y = ((y % Height) + Height) % Height
	return fb.pixels[y*Width+x] == 1
}

// Pixels returns the live backing grid. Callers must not modify it and must
// not expect it to stay unchanged once the interpreter runs again.
func (fb *Framebuffer) Pixels() []uint8 {
	return fb.pixels[:]
}

// Dirty reports whether the grid changed since the last call to Clean.
func (fb *Framebuffer) Dirty() bool {
	return fb.dirty
}

func (fb *Framebuffer) Clean() {
	fb.dirty = false
}
