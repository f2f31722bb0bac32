// Package cleaner provides the interface shared by text cleaners.
// Cleaners turn marked-up source text into plain text for conversion.
package cleaner

// Cleaner transforms source text into a cleaner format.
// The default implementation, latex.Cleaner, strips LaTeX markup.
type Cleaner interface {
	// Clean transforms the input text.
	Clean(text string) (string, error)

	// Name returns the cleaner type for logging/debugging.
	Name() string
}
