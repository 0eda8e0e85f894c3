package repository

const (
	DefaultPerPage = 15
	MinPerPage     = 5
	MaxPerPage     = 100
)

// ClampPerPage bounds a requested page size into [MinPerPage,
// MaxPerPage], defaulting to DefaultPerPage when absent.
func ClampPerPage(requested *int) int {
	perPage := DefaultPerPage
	if requested != nil {
		perPage = *requested
	}
	if perPage < MinPerPage {
		return MinPerPage
	}
	if perPage > MaxPerPage {
		return MaxPerPage
	}
	return perPage
}

type PageLinks struct {
	First int  `json:"first"`
	Last  int  `json:"last"`
	Prev  *int `json:"prev"`
	Next  *int `json:"next"`
}

type PageMeta struct {
	CurrentPage int       `json:"current_page"`
	LastPage    int       `json:"last_page"`
	PerPage     int       `json:"per_page"`
	Total       int64     `json:"total"`
	From        *int      `json:"from"`
	To          *int      `json:"to"`
	Links       PageLinks `json:"links"`
}

// NewPageMeta reshapes a count coming from the datastore into page
// metadata. It never recomputes the count.
func NewPageMeta(page, perPage int, total int64) PageMeta {
	if page < 1 {
		page = 1
	}

	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	meta := PageMeta{
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
		Links:       PageLinks{First: 1, Last: lastPage},
	}

	if page > 1 {
		prev := page - 1
		meta.Links.Prev = &prev
	}
	if page < lastPage {
		next := page + 1
		meta.Links.Next = &next
	}

	if total > 0 && page <= lastPage {
		from := (page-1)*perPage + 1
		to := page * perPage
		if int64(to) > total {
			to = int(total)
		}
		meta.From = &from
		meta.To = &to
	}

	return meta
}
