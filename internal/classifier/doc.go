// Package classifier decides whether pasted plain text is markdown.
//
// The decision is a pure function of the text and an optional companion
// HTML payload from the same clipboard. A payload with real structure wins
// over the plain text. Short single lines need a high-precision pattern;
// longer input needs either one strong pattern or two distinct weaker
// ones. The pattern table and thresholds are data on Policy.
package classifier
