package domain

// ParsedPage holds the raw values decoded from one fetched page.
type ParsedPage struct {
	URL             string
	Title           string
	ViewCount       string
	PublicationDate string
}

// PageRecord is a validated page: views parsed, title still undecomposed.
type PageRecord struct {
	Title           string
	Views           uint64
	URL             string
	PublicationDate string
}

// OutputRow is one line of the report. Optional fields are empty when their column is disabled.
type OutputRow struct {
	Speaker string
	Title   string
	Views   uint64
	URL     string
	Date    string
}

// Columns selects the optional report columns; the set is fixed for a whole run.
type Columns struct {
	Speaker bool
	URL     bool
	Date    bool
}

// Column header names.
const (
	ColumnSpeaker = "Speaker"
	ColumnTitle   = "Title"
	ColumnViews   = "Views"
	ColumnURL     = "URL"
	ColumnDate    = "PublicationDate"
)

// Names returns the header in output order.
func (c Columns) Names() []string {
	names := make([]string, 0, 5)
	if c.Speaker {
		names = append(names, ColumnSpeaker)
	}
	names = append(names, ColumnTitle, ColumnViews)
	if c.URL {
		names = append(names, ColumnURL)
	}
	if c.Date {
		names = append(names, ColumnDate)
	}
	return names
}

// TitleIndex is the position of the Title column.
func (c Columns) TitleIndex() int {
	if c.Speaker {
		return 1
	}
	return 0
}

// Count is the number of columns in every line.
func (c Columns) Count() int {
	return len(c.Names())
}
