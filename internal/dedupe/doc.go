// Package dedupe identifies duplicate files by content fingerprint.
//
// A fingerprint is the SHA-256 of the full file bytes, streamed so large
// files never load into memory. Fingerprints from independent workers are
// reconciled through a global Index, which merges chunk-local observations
// and reports only groups with two or more members — duplicate groups whose
// members land in different chunks merge naturally because the index is
// keyed by fingerprint.
package dedupe
