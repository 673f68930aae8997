// Package normalisers holds the text normalisers that clean free-text
// answers before analysis. The slang subpackage rewrites informal Russian
// and Kazakh money and filler words and extracts amounts and cities.
package normalisers
