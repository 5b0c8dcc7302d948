package domain

import (
	"encoding/json"
	"fmt"
)

// StoredImagePlaceholder is persisted in place of multi-part message content.
// The structured form is not re-displayable without the original payload, so
// the store always receives this fixed sentinel instead.
const StoredImagePlaceholder = "[image message]"

// ContentPart is one typed fragment of a structured message body.
type ContentPart struct {
	Type     string    `json:"type"` // text, image_url
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageRef `json:"image_url,omitempty"`
}

// ImageRef points at an image carried inside a content part.
type ImageRef struct {
	URL string `json:"url"`
}

// Content is the body of a chat message: either plain text or a sequence of
// typed parts. The JSON shape is preserved in both directions so the upstream
// API receives exactly what the frontend sent.
type Content struct {
	Text    string
	Parts   []ContentPart
	IsParts bool
}

// TextContent wraps a plain string as message content.
func TextContent(s string) Content {
	return Content{Text: s}
}

// PartsContent wraps a part sequence as message content.
func PartsContent(parts []ContentPart) Content {
	return Content{Parts: parts, IsParts: true}
}

// UnmarshalJSON accepts either a JSON string or an array of content parts.
func (c *Content) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		c.Text = text
		c.Parts = nil
		c.IsParts = false
		return nil
	}

	var parts []ContentPart
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("content must be a string or an array of parts: %w", err)
	}
	c.Text = ""
	c.Parts = parts
	c.IsParts = true
	return nil
}

// MarshalJSON writes the content back in its original shape.
func (c Content) MarshalJSON() ([]byte, error) {
	if c.IsParts {
		return json.Marshal(c.Parts)
	}
	return json.Marshal(c.Text)
}

// Storable flattens the content to the single string persisted in the store.
// Plain text is stored verbatim; any part sequence collapses to the image
// placeholder, even when every part is text.
func (c Content) Storable() string {
	if c.IsParts {
		return StoredImagePlaceholder
	}
	return c.Text
}
