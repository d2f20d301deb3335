package classify

import "strings"

// codePatterns are the source-code markers probed in extracted text.
var codePatterns = []string{
	"def ", "function ", "class ", "import ", "from ",
	"console.log", "document.", "window.", "var ", "let ", "const ",
	"public class", "private ", "public ", "static ",
	"#include", "int main", "void ", "return ",
	"<?php", "<?xml", "<!DOCTYPE", "<html", "<script",
	"package ", "func ",
}

// resumeIndicators are section headings and terms typical of resumes. At
// least two distinct indicators must appear before a document is reclassified.
var resumeIndicators = []string{
	"work experience", "employment history", "professional experience",
	"education", "academic background", "qualifications",
	"skills", "technical skills", "core competencies",
	"objective", "summary", "profile", "about me",
	"software engineer", "developer", "programmer",
	"bachelor", "master", "degree", "university",
}

// resumeNameKeywords reclassify a document on filename alone.
var resumeNameKeywords = []string{
	"resume", "cv", "curriculum", "vitae", "profile",
	"experience", "education", "skills", "objective",
	"summary", "qualifications",
}

// Refine upgrades a Documents or Others classification using extracted file
// content. Any other base category is returned untouched, as is the base
// when text is empty. Refinement is deterministic given the same inputs.
func Refine(base Category, name, text string) Category {
	if base != CategoryDocuments && base != CategoryOthers {
		return base
	}

	lowerName := strings.ToLower(name)
	if looksLikeResume(lowerName, text) {
		return CategoryResume
	}
	if text != "" && looksLikeCode(text) {
		return CategoryCode
	}
	return base
}

func looksLikeCode(text string) bool {
	for _, pattern := range codePatterns {
		if strings.Contains(text, pattern) {
			return true
		}
	}
	return false
}

func looksLikeResume(lowerName, text string) bool {
	for _, keyword := range resumeNameKeywords {
		if strings.Contains(lowerName, keyword) {
			return true
		}
	}
	if text == "" {
		return false
	}
	lowerText := strings.ToLower(text)
	indicators := 0
	for _, indicator := range resumeIndicators {
		if strings.Contains(lowerText, indicator) {
			indicators++
			if indicators >= 2 {
				return true
			}
		}
	}
	return false
}
