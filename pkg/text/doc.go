// Package text holds small total functions over strings. Lengths and counts
// are in characters (Unicode code points), not bytes.
package text
