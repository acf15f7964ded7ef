package anticaptcha

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Image is a captcha image payload. It always travels as clean base64 text:
// no line breaks and no "data:image/png;base64," header.
type Image struct {
	encoded string
}

// ImageFromBytes encodes raw image bytes.
func ImageFromBytes(b []byte) Image {
	return Image{encoded: base64.StdEncoding.EncodeToString(b)}
}

// ImageFromBase64 wraps already encoded image data, stripping any data URI
// header and whitespace.
func ImageFromBase64(s string) Image {
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			s = s[i+1:]
		}
	}
	return Image{encoded: strings.Join(strings.Fields(s), "")}
}

// ImageFromFile reads and encodes an image file.
func ImageFromFile(path string) (Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("read image: %w", err)
	}
	return ImageFromBytes(b), nil
}

// Base64 returns the encoded payload.
func (img Image) Base64() string { return img.encoded }

// Bytes decodes the payload.
func (img Image) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(img.encoded)
}

// IsZero reports whether the image is empty.
func (img Image) IsZero() bool { return img.encoded == "" }

// MarshalJSON implements json.Marshaler.
func (img Image) MarshalJSON() ([]byte, error) {
	return json.Marshal(img.encoded)
}

// UnmarshalJSON implements json.Unmarshaler.
func (img *Image) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("image body must be a base64 string: %w", err)
	}
	*img = ImageFromBase64(s)
	return nil
}
