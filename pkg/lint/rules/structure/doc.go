// Package structure provides document-structure rules: heading hierarchy
// and density, and structural element variety.
package structure
