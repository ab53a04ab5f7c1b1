package booth

import "github.com/leca/ai-photobooth/internal/model"

// Reel is the chronological browsing view over stored images. It is
// rebuilt wholesale on every refresh; the cursor resets to the newest
// entry. Like Session, it belongs to a single event loop and is not safe
// for concurrent use.
type Reel struct {
	images []model.GalleryImage
	cursor int
	err    error
}

// ApplyListing replaces the reel contents with a fresh listing. A listing
// error empties the reel and is retained for display.
func (r *Reel) ApplyListing(images []model.GalleryImage, err error) {
	if err != nil {
		r.images = nil
		r.cursor = 0
		r.err = err
		return
	}
	r.images = images
	r.cursor = 0
	r.err = nil
}

// Err returns the error from the last failed refresh, if any.
func (r *Reel) Err() error { return r.err }

func (r *Reel) Len() int { return len(r.images) }

// Current returns the image under the cursor.
func (r *Reel) Current() (model.GalleryImage, bool) {
	if len(r.images) == 0 {
		return model.GalleryImage{}, false
	}
	return r.images[r.cursor], true
}

// Next advances the cursor, wrapping around at the end.
func (r *Reel) Next() {
	if len(r.images) == 0 {
		return
	}
	r.cursor = (r.cursor + 1) % len(r.images)
}

// Prev moves the cursor back, wrapping around at the start.
func (r *Reel) Prev() {
	if len(r.images) == 0 {
		return
	}
	r.cursor = (r.cursor - 1 + len(r.images)) % len(r.images)
}
