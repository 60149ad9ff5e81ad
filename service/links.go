package service

import (
	"net/url"
	"path"
	"strconv"
	"strings"

	"aqua-store/models"
)

// Thumbnail sizes served by /thumbs
const (
	SizeThumb  = "thumb"
	SizeMedium = "medium"
)

// PageURL builds the catalog page URL for the given filter, selected product and active image.
// An empty code means the overlay is closed; image 0 is omitted.
func PageURL(criteria models.FilterCriteria, code string, image int) string {
	v := criteria.Values()
	if code != "" {
		v.Set("product", code)
		if image > 0 {
			v.Set("image", strconv.Itoa(image))
		}
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

// PrintURL builds the printable grid URL for the filter
func PrintURL(criteria models.FilterCriteria) string {
	return withQuery("/catalog/print", criteria.Values())
}

// PDFURL builds the PDF export URL for the filter
func PDFURL(criteria models.FilterCriteria) string {
	return withQuery("/catalog.pdf", criteria.Values())
}

// ContactPath is the local route that redirects to the messaging service
func ContactPath(code string) string {
	return "/contact/" + url.PathEscape(code)
}

// ImageURL resolves an image reference for the browser. Absolute and data
// URLs are used as they are; relative references go through the thumbnail route.
func ImageURL(ref, size string) string {
	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "data:") || strings.HasPrefix(lower, "//") {
		return ref
	}

	clean := strings.TrimPrefix(path.Clean("/"+ref), "/")
	segments := strings.Split(clean, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return "/thumbs/" + size + "/" + strings.Join(segments, "/")
}

func withQuery(p string, v url.Values) string {
	if len(v) == 0 {
		return p
	}
	return p + "?" + v.Encode()
}
