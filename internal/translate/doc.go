// Package translate augments vocabulary entries with multi-language
// meanings fetched from an external translation provider. It includes
// per-run translation caching and an English fallback for failed calls so
// a flaky provider never aborts a batch.
package translate
