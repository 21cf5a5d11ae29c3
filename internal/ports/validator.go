package ports

import "arxml-viewer/internal/types"

// ValidatorPort answers the cheap pre-parse questions about a file.
// None of the methods return errors; a file that cannot be read is
// simply not valid, and Info carries the failure message in its
// record.
type ValidatorPort interface {
	IsValidXML(path string) bool
	IsAutosarXML(path string) bool
	Info(path string) types.XMLInfo
}
