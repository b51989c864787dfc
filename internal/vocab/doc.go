// Package vocab defines the vocabulary entry model shared by every
// tangocho command and the JSON dataset files they exchange. Datasets are
// plain UTF-8 JSON arrays so they can be served to a browser or diffed in
// version control without tooling.
package vocab
