package classify

// Category labels one semantic grouping of files. A file maps to exactly one
// category; unknown extensions resolve to CategoryOthers.
type Category string

const (
	CategoryDocuments     Category = "Documents"
	CategoryImages        Category = "Images"
	CategoryVideos        Category = "Videos"
	CategoryAudio         Category = "Audio"
	CategoryCode          Category = "Code"
	CategorySpreadsheets  Category = "Spreadsheets"
	CategoryPresentations Category = "Presentations"
	CategoryArchives      Category = "Archives"
	CategoryResume        Category = "Resume"
	CategoryOthers        Category = "Others"
)

// Categories returns every category in stable display order.
func Categories() []Category {
	return []Category{
		CategoryDocuments,
		CategoryImages,
		CategoryVideos,
		CategoryAudio,
		CategoryCode,
		CategorySpreadsheets,
		CategoryPresentations,
		CategoryArchives,
		CategoryResume,
		CategoryOthers,
	}
}

// String implements fmt.Stringer.
func (c Category) String() string { return string(c) }
