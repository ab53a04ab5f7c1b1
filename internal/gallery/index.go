package gallery

import (
	"context"
	"sort"
	"strings"

	"github.com/leca/ai-photobooth/internal/blobstore"
	"github.com/leca/ai-photobooth/internal/model"
)

// IndexError reports a failure listing the underlying blob store.
type IndexError struct {
	Err error
}

func (e *IndexError) Error() string { return "listing images: " + e.Err.Error() }

func (e *IndexError) Unwrap() error { return e.Err }

// Index derives the gallery listing from the blob store's flat namespace.
// It keeps no state of its own; the store listing is the only index.
type Index struct {
	store blobstore.Store
}

// NewIndex creates an Index over the given store.
func NewIndex(store blobstore.Store) *Index {
	return &Index{store: store}
}

// List returns every stored image, newest first. Category is derived
// purely from the key prefix: uploads/ is original, outputs/ is
// transformed; anything else is excluded, as are folder placeholder keys
// ending in "/". Ties on creation time keep store order (stable sort).
func (ix *Index) List(ctx context.Context) ([]model.GalleryImage, error) {
	objects, err := ix.store.List(ctx, "")
	if err != nil {
		return nil, &IndexError{Err: err}
	}

	images := make([]model.GalleryImage, 0, len(objects))
	for _, obj := range objects {
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		var category model.Category
		switch {
		case strings.HasPrefix(obj.Key, "uploads/"):
			category = model.CategoryOriginal
		case strings.HasPrefix(obj.Key, "outputs/"):
			category = model.CategoryTransformed
		default:
			continue
		}
		images = append(images, model.GalleryImage{
			URL:         obj.URL,
			Type:        category,
			Name:        obj.Key,
			TimeCreated: obj.CreatedAt,
		})
	}

	sort.SliceStable(images, func(i, j int) bool {
		return images[i].TimeCreated.After(images[j].TimeCreated)
	})
	return images, nil
}
