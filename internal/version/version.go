// ABOUTME: Version constants
// ABOUTME: Product identification for logs and about output
package version

const (
	Version = "0.1.0"
	Product = "Audinux"
)
