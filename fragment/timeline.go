package fragment

import (
	"strconv"

	"github.com/beevik/etree"
)

// Event is one entry on a timeline. Title is required, Date and Description
// may be empty.
type Event struct {
	Date        string
	Title       string
	Description string
}

// TimelineOptions controls Timeline.
type TimelineOptions struct {
	Title string // heading above the timeline, defaults to "Timeline"
}

// Timeline builds a vertical timeline. Events render in input order, an
// empty event list yields a valid container with no entries.
func Timeline(events []Event, opts TimelineOptions) (Markup, error) {
	if opts.Title == "" {
		opts.Title = "Timeline"
	}
	for i, e := range events {
		if e.Title == "" {
			return "", &MissingFieldError{Field: "events[" + strconv.Itoa(i) + "].title"}
		}
	}

	wrapper := etree.NewElement("div")
	wrapper.CreateAttr("style", "margin: 20px 0;")
	h := wrapper.CreateElement("h4")
	h.SetText(opts.Title)

	list := wrapper.CreateElement("div")
	list.CreateAttr("style", "margin-top: 20px;")

	for _, e := range events {
		item := list.CreateElement("div")
		item.CreateAttr("style", cssDecls(
			"position: relative;",
			"padding-left: 30px;",
			"margin-bottom: 30px;",
			"border-left: 2px solid #007bff;",
		))

		dot := item.CreateElement("div")
		dot.CreateAttr("style", cssDecls(
			"position: absolute;",
			"left: -8px;",
			"top: 0;",
			"width: 14px;",
			"height: 14px;",
			"border-radius: 50%;",
			"background: #007bff;",
		))

		date := item.CreateElement("div")
		date.CreateAttr("style", "font-weight: bold; color: #007bff; font-size: 0.9em;")
		date.SetText(e.Date)

		title := item.CreateElement("div")
		title.CreateAttr("style", "font-weight: bold; margin: 5px 0;")
		title.SetText(e.Title)

		desc := item.CreateElement("div")
		desc.CreateAttr("style", "color: #6c757d;")
		desc.SetText(e.Description)
	}

	return render(wrapper)
}
