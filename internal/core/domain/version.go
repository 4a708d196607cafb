package domain

import "fmt"

// VersionMismatch records a package whose installed version differs from the
// version the shared bundle was built against.
type VersionMismatch struct {
	Package   string
	Declared  string
	Installed string
}

func (m VersionMismatch) String() string {
	return fmt.Sprintf("%s: bundle has %s, installed %s", m.Package, m.Declared, m.Installed)
}
