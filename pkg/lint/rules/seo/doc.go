// Package seo provides per-item metadata rules: titles, descriptions,
// slugs, categories, authors, and featured images. Length rules read
// their bounds from the per-content-type resolved thresholds.
package seo
