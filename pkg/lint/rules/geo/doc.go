// Package geo provides the generative-engine-optimization rules: checks
// that make content easy for AI answer engines to cite accurately. Every
// rule in this family is gated on the content types configured under
// geo.enabledContentTypes.
package geo
