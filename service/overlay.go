package service

import (
	"aqua-store/models"
	"aqua-store/utils"
)

// ProductLookup finds a catalog product by code
type ProductLookup interface {
	FindByCode(code string) (models.Product, bool)
}

// Overlay is the detail overlay state: closed, or open on one product with
// an active image index. The zero value is closed. Transitions return a new
// state and never modify the receiver.
type Overlay struct {
	product *models.Product
	active  int
}

// IsOpen reports whether a product is selected
func (o Overlay) IsOpen() bool {
	return o.product != nil
}

// Product returns the selected product
func (o Overlay) Product() (models.Product, bool) {
	if o.product == nil {
		return models.Product{}, false
	}
	return *o.product, true
}

// ActiveImage returns the active image index (0 when closed)
func (o Overlay) ActiveImage() int {
	return o.active
}

// Open selects the product with code, replacing any current selection, and
// activates its cover image. An unknown code leaves the state unchanged.
func (o Overlay) Open(lookup ProductLookup, code string) Overlay {
	p, ok := lookup.FindByCode(code)
	if !ok {
		return o
	}
	return Overlay{product: &p, active: 0}
}

// ChangeImage activates the image at index. No-op when closed or out of range.
func (o Overlay) ChangeImage(index int) Overlay {
	if o.product == nil || index < 0 || index >= len(o.product.Images) {
		return o
	}
	return Overlay{product: o.product, active: index}
}

// Close clears the selection
func (o Overlay) Close() Overlay {
	return Overlay{}
}

// View builds the overlay view model. criteria is kept in every link so
// closing or switching images returns to the same filtered grid.
func (o Overlay) View(criteria models.FilterCriteria) models.OverlayView {
	if o.product == nil {
		return models.OverlayView{}
	}
	p := o.product

	thumbs := make([]models.ThumbnailView, 0, len(p.Images))
	for i, img := range p.Images {
		thumbs = append(thumbs, models.ThumbnailView{
			Index:  i,
			URL:    ImageURL(img, SizeThumb),
			Active: i == o.active,
			Link:   PageURL(criteria, p.Code, i),
		})
	}

	view := models.OverlayView{
		Open:         true,
		Code:         p.Code,
		Name:         p.Name,
		Category:     p.Category,
		Description:  p.Description,
		Status:       p.Status,
		Price:        utils.FormatMoney(p.Price),
		MainImageURL: ImageURL(p.Images[o.active], SizeMedium),
		ActiveImage:  o.active,
		Thumbnails:   thumbs,
		ContactURL:   ContactPath(p.Code),
		CloseURL:     PageURL(criteria, "", 0),
		ScrollLocked: true,
	}
	return view
}
