package api

import "time"

// EntryRow is the list and timeline projection of one entry of any kind.
type EntryRow struct {
	ID         uint
	Kind       string
	KindLabel  string
	Timestamp  time.Time
	Title      string
	Detail     string
	Notes      string
	EditPath   string
	DeletePath string
}

// FormOption is one choice of a select input.
type FormOption struct {
	Value string
	Label string
}

// FormField describes one input on the shared entry form. The set of fields
// of a resource is exactly the set of attributes accepted from a write
// request.
type FormField struct {
	Name        string
	Label       string
	Input       string // text, textarea, number, datetime, select
	Required    bool
	Min         int
	Max         int
	Options     []FormOption
	Suggestions []string
}

// AddLink points at a "log something on this date" form from the day view.
type AddLink struct {
	Label string
	Path  string
}
