package classify

import (
	"strings"

	"sortd/internal/batch"
)

// byExtension is the closed lookup table backing primary classification.
// Compound suffixes (".tar.gz") appear alongside their plain forms so the
// most specific candidate wins.
var byExtension = map[string]Category{
	".jpg":  CategoryImages,
	".jpeg": CategoryImages,
	".png":  CategoryImages,
	".gif":  CategoryImages,
	".bmp":  CategoryImages,
	".tiff": CategoryImages,
	".svg":  CategoryImages,
	".webp": CategoryImages,
	".heic": CategoryImages,

	".pdf":  CategoryDocuments,
	".doc":  CategoryDocuments,
	".docx": CategoryDocuments,
	".txt":  CategoryDocuments,
	".rtf":  CategoryDocuments,
	".odt":  CategoryDocuments,
	".md":   CategoryDocuments,

	".mp3":  CategoryAudio,
	".wav":  CategoryAudio,
	".flac": CategoryAudio,
	".aac":  CategoryAudio,
	".ogg":  CategoryAudio,
	".m4a":  CategoryAudio,

	".mp4": CategoryVideos,
	".mov": CategoryVideos,
	".avi": CategoryVideos,
	".mkv": CategoryVideos,
	".wmv": CategoryVideos,
	".flv": CategoryVideos,

	".py":   CategoryCode,
	".js":   CategoryCode,
	".ts":   CategoryCode,
	".java": CategoryCode,
	".cpp":  CategoryCode,
	".c":    CategoryCode,
	".go":   CategoryCode,
	".html": CategoryCode,
	".css":  CategoryCode,
	".sql":  CategoryCode,
	".json": CategoryCode,
	".xml":  CategoryCode,
	".yaml": CategoryCode,
	".yml":  CategoryCode,

	".zip":    CategoryArchives,
	".tar":    CategoryArchives,
	".gz":     CategoryArchives,
	".tar.gz": CategoryArchives,
	".rar":    CategoryArchives,
	".7z":     CategoryArchives,

	".xlsx": CategorySpreadsheets,
	".xls":  CategorySpreadsheets,
	".csv":  CategorySpreadsheets,
	".ods":  CategorySpreadsheets,

	".pptx": CategoryPresentations,
	".ppt":  CategoryPresentations,
	".odp":  CategoryPresentations,
}

// namePatterns maps filename keywords to categories for files whose
// extension is unrecognized.
var namePatterns = []struct {
	keywords []string
	category Category
}{
	{[]string{"resume", "cv", "curriculum"}, CategoryResume},
	{[]string{"presentation", "slides", "ppt"}, CategoryPresentations},
	{[]string{"spreadsheet", "budget", "expense", "financial"}, CategorySpreadsheets},
}

// Classify returns the category for a file descriptor. The mapping is pure,
// total, and deterministic: extension match is case-insensitive, compound
// suffixes resolve through their most specific recognized form, and unknown
// extensions fall back to filename patterns and finally CategoryOthers.
func Classify(f batch.File) Category {
	for _, ext := range f.ExtChain() {
		if category, ok := byExtension[ext]; ok {
			return category
		}
	}

	name := strings.ToLower(f.Name)
	for _, pattern := range namePatterns {
		for _, keyword := range pattern.keywords {
			if strings.Contains(name, keyword) {
				return pattern.category
			}
		}
	}
	return CategoryOthers
}
