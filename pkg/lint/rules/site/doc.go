// Package site provides cross-document rules: duplicate metadata, broken
// internal links and image paths, orphaned pages, translation parity, and
// raw HTML policy. These rules lean on the shared run context rather than
// the single item under evaluation.
package site
