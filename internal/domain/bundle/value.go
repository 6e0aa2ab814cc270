package bundle

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Color is a packed ARGB color value.
type Color uint32

// Common colors.
const (
	ColorTransparent Color = 0x00000000
	ColorBlack       Color = 0xFF000000
	ColorWhite       Color = 0xFFFFFFFF
	ColorRed         Color = 0xFFFF0000
	ColorGreen       Color = 0xFF00FF00
	ColorBlue        Color = 0xFF0000FF
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// ParseColor parses "#RRGGBB" (opaque) or "#AARRGGBB".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 6, 8:
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 6 {
		v |= 0xFF000000
	}
	return Color(v), nil
}

// Alpha returns the alpha component.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// Opaque returns the color with its alpha channel forced to 0xFF.
func (c Color) Opaque() Color { return c | ColorBlack }

// Hex formats the color as "#AARRGGBB".
func (c Color) Hex() string { return fmt.Sprintf("#%08X", uint32(c)) }

// RGBHex formats the color as "#RRGGBB", dropping alpha.
func (c Color) RGBHex() string { return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF) }

// String implements fmt.Stringer.
func (c Color) String() string { return c.Hex() }

// MarshalText renders the color as "#AARRGGBB".
func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

// UnmarshalText parses "#RRGGBB" or "#AARRGGBB".
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Bitmap is an immutable ARGB image.
type Bitmap struct {
	width  int
	height int
	pixels []Color
}

// ErrInvalidBitmap is returned for bitmaps whose dimensions do not match
// their pixel data.
var ErrInvalidBitmap = errors.New("invalid bitmap")

// MaxBitmapSide is the largest accepted width or height.
const MaxBitmapSide = 4096

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxBitmapSide || height > MaxBitmapSide {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidBitmap, width, height)
	}
	return nil
}

// NewBitmap creates a bitmap from row-major pixels.
func NewBitmap(pixels []Color, width, height int) (*Bitmap, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrInvalidBitmap, len(pixels), width, height)
	}

	px := make([]Color, len(pixels))
	copy(px, pixels)
	return &Bitmap{width: width, height: height, pixels: px}, nil
}

// DecodePNG decodes PNG data into a bitmap.
func DecodePNG(data []byte) (*Bitmap, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBitmap, err)
	}
	if err := checkDimensions(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBitmap, err)
	}
	return FromImage(img)
}

// FromImage converts an image into a bitmap.
func FromImage(img image.Image) (*Bitmap, error) {
	bounds := img.Bounds()
	if err := checkDimensions(bounds.Dx(), bounds.Dy()); err != nil {
		return nil, err
	}
	pixels := make([]Color, 0, bounds.Dx()*bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c, _ := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pixels = append(pixels, Color(uint32(c.A)<<24|uint32(c.R)<<16|uint32(c.G)<<8|uint32(c.B)))
		}
	}

	return NewBitmap(pixels, bounds.Dx(), bounds.Dy())
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.height }

// Pixel returns the color at (x, y), or ColorTransparent outside the bitmap.
func (b *Bitmap) Pixel(x, y int) Color {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return ColorTransparent
	}
	return b.pixels[y*b.width+x]
}

// PendingIntent is an opaque callback handle supplied by the client app.
type PendingIntent struct {
	ID      string `json:"id,omitempty" yaml:"id,omitempty"`
	Action  string `json:"action,omitempty" yaml:"action,omitempty"`
	Package string `json:"package,omitempty" yaml:"package,omitempty"`
}

// NewPendingIntent creates a pending intent with a fresh id.
func NewPendingIntent(action string) *PendingIntent {
	return &PendingIntent{ID: uuid.New().String(), Action: action}
}

// Binder is an opaque handle to a remote object, such as a session token.
type Binder struct {
	ID string `json:"id" yaml:"id"`
}

// NewBinder creates a binder with a fresh id.
func NewBinder() *Binder {
	return &Binder{ID: uuid.New().String()}
}
