package quest

import (
	"fmt"
	"strconv"
	"strings"
)

// Category document keys beyond the shared id/nom keys.
const (
	FieldIcon  = "icon"
	FieldColor = "color"
)

// Category groups quests under a display name, an icon and a theme color.
type Category struct {
	ID   int
	Name string
	// Icon is the drawable resource name shipped with the mobile app.
	Icon  string
	Color Color
}

// DocumentID returns the category document key, e.g. "categorie_3".
func (c Category) DocumentID() string {
	return documentID(CategoryDocPrefix, c.ID)
}

// Fields maps the category onto the document fields read by the mobile app.
func (c Category) Fields() map[string]any {
	return map[string]any{
		FieldID:    c.ID,
		FieldName:  normalizeText(c.Name),
		FieldIcon:  c.Icon,
		FieldColor: c.Color.Value(),
	}
}

// Document returns the category as a write-ready document.
func (c Category) Document() Document {
	return Document{
		Collection: CategoryCollection,
		ID:         c.DocumentID(),
		Label:      c.Name,
		Fields:     c.Fields(),
	}
}

// Color is a packed 0xAARRGGBB color.
type Color uint32

// ARGB packs 8-bit channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ColorFromFloats packs [0,1] channels the way the mobile app does:
// each channel is scaled by 255 and truncated.
func ColorFromFloats(r, g, b, a float32) Color {
	return ARGB(floatChannel(a), floatChannel(r), floatChannel(g), floatChannel(b))
}

func floatChannel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(int(v * 255))
}

// ColorFromHex parses "#AARRGGBB" or "#RRGGBB" (opaque). A "0x" prefix is
// accepted in place of "#".
func ColorFromHex(value string) (Color, error) {
	raw := strings.TrimSpace(value)
	raw = strings.TrimPrefix(raw, "#")
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		raw = raw[2:]
	}
	switch len(raw) {
	case 6:
		raw = "FF" + raw
	case 8:
	default:
		return 0, fmt.Errorf("color %q: expected 6 or 8 hex digits", value)
	}
	parsed, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", value, err)
	}
	return Color(parsed), nil
}

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel.
func (c Color) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c Color) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c Color) Blue() uint8 { return uint8(c) }

// Value returns the color as the signed 32-bit integer the mobile app
// stores, widened to int64 for the document database.
func (c Color) Value() int64 {
	return int64(int32(c))
}

// Hex formats the color as "#AARRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}
