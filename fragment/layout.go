package fragment

import (
	"strconv"

	"github.com/beevik/etree"
)

// ColumnOptions controls TwoColumn widths on the 12 unit grid. Zero values
// default to an even 6/6 split.
type ColumnOptions struct {
	LeftWidth  int
	RightWidth int
}

// TwoColumn builds a two column grid row. Both bodies are grafted as
// already rendered markup.
func TwoColumn(left, right Markup, opts ColumnOptions) (Markup, error) {
	if opts.LeftWidth == 0 {
		opts.LeftWidth = 6
	}
	if opts.RightWidth == 0 {
		opts.RightWidth = 6
	}
	if opts.LeftWidth < 1 || opts.LeftWidth > 12 {
		return "", &InvalidOptionError{Option: "left_width", Value: strconv.Itoa(opts.LeftWidth), Allowed: "1 to 12"}
	}
	if opts.RightWidth < 1 || opts.RightWidth > 12 {
		return "", &InvalidOptionError{Option: "right_width", Value: strconv.Itoa(opts.RightWidth), Allowed: "1 to 12"}
	}

	row := etree.NewElement("div")
	row.CreateAttr("class", "row")
	row.CreateAttr("style", "margin: 20px 0;")

	leftCol := row.CreateElement("div")
	leftCol.CreateAttr("class", "col-md-"+strconv.Itoa(opts.LeftWidth))
	if err := graft(leftCol, "left_content", left); err != nil {
		return "", err
	}

	rightCol := row.CreateElement("div")
	rightCol.CreateAttr("class", "col-md-"+strconv.Itoa(opts.RightWidth))
	if err := graft(rightCol, "right_content", right); err != nil {
		return "", err
	}

	return render(row)
}

// Image is one gallery entry. Src is required, Alt and Caption may be empty.
type Image struct {
	Src     string
	Alt     string
	Caption string
}

// GalleryOptions controls ImageGallery.
type GalleryOptions struct {
	Columns int    // cards per row, must divide the 12 unit grid, defaults to 3
	Title   string // optional heading
}

// ImageGallery builds a grid of image cards. Images render in input order,
// an empty image list yields a valid container with no cards.
func ImageGallery(images []Image, opts GalleryOptions) (Markup, error) {
	if opts.Columns == 0 {
		opts.Columns = 3
	}
	if opts.Columns < 1 || opts.Columns > 12 || 12%opts.Columns != 0 {
		return "", &InvalidOptionError{Option: "columns", Value: strconv.Itoa(opts.Columns), Allowed: "1, 2, 3, 4, 6 or 12"}
	}
	for i, img := range images {
		if img.Src == "" {
			return "", &MissingFieldError{Field: "images[" + strconv.Itoa(i) + "].src"}
		}
	}

	colClass := "col-md-" + strconv.Itoa(12/opts.Columns) + " mb-4"

	wrapper := etree.NewElement("div")
	wrapper.CreateAttr("style", "margin: 20px 0;")
	if opts.Title != "" {
		h := wrapper.CreateElement("h4")
		h.SetText(opts.Title)
	}

	row := wrapper.CreateElement("div")
	row.CreateAttr("class", "row")

	for _, img := range images {
		col := row.CreateElement("div")
		col.CreateAttr("class", colClass)

		card := col.CreateElement("div")
		card.CreateAttr("class", "card")

		pic := card.CreateElement("img")
		pic.CreateAttr("src", img.Src)
		pic.CreateAttr("class", "card-img-top")
		pic.CreateAttr("alt", img.Alt)
		pic.CreateAttr("style", "height: 200px; object-fit: cover;")

		body := card.CreateElement("div")
		body.CreateAttr("class", "card-body")
		if img.Caption != "" {
			captionWrap := body.CreateElement("div")
			captionWrap.CreateAttr("class", "text-center mt-2")
			caption := captionWrap.CreateElement("small")
			caption.SetText(img.Caption)
		}
	}

	return render(wrapper)
}
