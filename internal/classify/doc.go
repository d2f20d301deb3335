// Package classify maps file descriptors to semantic categories.
//
// Primary classification is a pure, total lookup keyed by normalized file
// extension, with filename-pattern fallbacks for files whose extension is
// unrecognized. A secondary content-based pass can refine a Documents or
// Others result when extracted text is available; that pass is strictly
// best-effort and never blocks extension-based classification.
package classify
