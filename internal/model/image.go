package model

import (
	"encoding/base64"
	"time"
)

// Category classifies a stored image by which side of the transform it
// came from.
type Category string

const (
	CategoryOriginal    Category = "original"
	CategoryTransformed Category = "transformed"
)

// ImagePayload holds decoded image bytes together with the MIME subtype
// declared by the data URL they were parsed from (e.g. "jpeg", "png").
type ImagePayload struct {
	Subtype string
	Data    []byte
}

// DataURL re-encodes the payload as a self-describing data URL.
func (p ImagePayload) DataURL() string {
	return "data:image/" + p.Subtype + ";base64," + base64.StdEncoding.EncodeToString(p.Data)
}

// GalleryImage is one entry in the /api/images listing.
type GalleryImage struct {
	URL         string    `json:"url"`
	Type        Category  `json:"type"`
	Name        string    `json:"name"`
	TimeCreated time.Time `json:"timeCreated"`
}

// ImageListResponse is the body of a successful GET /api/images.
type ImageListResponse struct {
	Images []GalleryImage `json:"images"`
}

// TransformRequest is the body of POST /api/transform.
type TransformRequest struct {
	Image  string `json:"image"`
	Prompt string `json:"prompt,omitempty"`
}

// TransformResponse is the body of a successful POST /api/transform.
// The storage URL field names are part of the published wire contract
// and predate the move off Firebase storage.
type TransformResponse struct {
	Success                bool   `json:"success"`
	TransformedImage       string `json:"transformedImage"`
	FirebaseOriginalURL    string `json:"firebaseOriginalUrl"`
	FirebaseTransformedURL string `json:"firebaseTransformedUrl"`
}
