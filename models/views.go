package models

// CardView is the display shape of one product in the grid
type CardView struct {
	Code        string
	Name        string
	Description string
	Category    string
	Status      string
	CoverURL    string
	Price       string
	ImageCount  int
	SelectURL   string
}

// GridView is what the grid template renders. Exactly one of Cards,
// Empty or LoadFailed describes the content.
type GridView struct {
	Cards      []CardView
	Empty      bool
	LoadFailed bool
	Title      string
	Hint       string
	Count      int
	CountLabel string
}

// ThumbnailView is one entry of the overlay thumbnail strip
type ThumbnailView struct {
	Index  int
	URL    string
	Active bool
	Link   string
}

// OverlayView is what the detail overlay template renders
type OverlayView struct {
	Open         bool
	Code         string
	Name         string
	Category     string
	Description  string
	Status       string
	Price        string
	MainImageURL string
	ActiveImage  int
	Thumbnails   []ThumbnailView
	ContactURL   string
	CloseURL     string
	ScrollLocked bool
}

// CatalogPage is the data passed to the catalog page template
type CatalogPage struct {
	Criteria   FilterCriteria
	Categories []string
	Statuses   []string
	Grid       GridView
	Overlay    OverlayView
	PrintURL   string
	PDFURL     string
}
