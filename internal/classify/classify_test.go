package classify_test

import (
	"testing"

	"sortd/internal/batch"
	"sortd/internal/classify"
)

func TestClassifyByExtension(t *testing.T) {
	cases := []struct {
		name string
		want classify.Category
	}{
		{"report.pdf", classify.CategoryDocuments},
		{"REPORT.PDF", classify.CategoryDocuments},
		{"photo.jpg", classify.CategoryImages},
		{"IMG_1234.HEIC", classify.CategoryImages},
		{"clip.mp4", classify.CategoryVideos},
		{"track.flac", classify.CategoryAudio},
		{"main.py", classify.CategoryCode},
		{"styles.css", classify.CategoryCode},
		{"budget.xlsx", classify.CategorySpreadsheets},
		{"deck.pptx", classify.CategoryPresentations},
		{"backup.tar.gz", classify.CategoryArchives},
		{"old_stuff.zip", classify.CategoryArchives},
		{"mystery.xyz", classify.CategoryOthers},
		{"noextension", classify.CategoryOthers},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classify.Classify(batch.File{Name: tc.name})
			if got != tc.want {
				t.Fatalf("Classify(%q) = %s, want %s", tc.name, got, tc.want)
			}
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	f := batch.File{Name: "quarterly_review_FINAL.pdf", Size: 2048}
	first := classify.Classify(f)
	for i := 0; i < 10; i++ {
		if got := classify.Classify(f); got != first {
			t.Fatalf("classification changed between calls: %s then %s", first, got)
		}
	}
}

func TestClassifyNamePatternFallback(t *testing.T) {
	cases := []struct {
		name string
		want classify.Category
	}{
		{"my_resume_2024.dat", classify.CategoryResume},
		{"slides_for_monday.bin", classify.CategoryPresentations},
		{"household_budget.v1", classify.CategorySpreadsheets},
	}
	for _, tc := range cases {
		if got := classify.Classify(batch.File{Name: tc.name}); got != tc.want {
			t.Fatalf("Classify(%q) = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestRefineUpgradesDocuments(t *testing.T) {
	code := "import os\n\ndef main():\n    pass\n"
	if got := classify.Refine(classify.CategoryDocuments, "notes.txt", code); got != classify.CategoryCode {
		t.Fatalf("Refine code text = %s, want Code", got)
	}

	resume := "Work Experience\nSoftware Engineer at Example Corp\nEducation\nBachelor of Science"
	if got := classify.Refine(classify.CategoryDocuments, "jane.pdf", resume); got != classify.CategoryResume {
		t.Fatalf("Refine resume text = %s, want Resume", got)
	}
}

func TestRefineRequiresTwoResumeIndicators(t *testing.T) {
	onlyOne := "This document mentions education and nothing else relevant."
	if got := classify.Refine(classify.CategoryDocuments, "doc.pdf", onlyOne); got != classify.CategoryDocuments {
		t.Fatalf("Refine single indicator = %s, want Documents", got)
	}
}

func TestRefineLeavesOtherCategoriesAlone(t *testing.T) {
	if got := classify.Refine(classify.CategoryImages, "resume.jpg", "work experience education"); got != classify.CategoryImages {
		t.Fatalf("Refine should not touch Images, got %s", got)
	}
}
