// Package guard decides whether shared bundle substitution is safe for a session.
package guard

import (
	"go.trai.ch/flowpack/internal/core/domain"
	"go.trai.ch/flowpack/internal/core/ports"
)

// Reason explains a Decision.
type Reason uint8

const (
	// ReasonEnabled means every installed package matches the bundle.
	ReasonEnabled Reason = iota
	// ReasonDescriptorUnavailable means the descriptor is missing or unreadable.
	ReasonDescriptorUnavailable
	// ReasonDescriptorEmpty means the descriptor parsed but declares no packages.
	ReasonDescriptorEmpty
	// ReasonVersionMismatch means at least one installed package differs from the bundle.
	ReasonVersionMismatch
)

func (r Reason) String() string {
	switch r {
	case ReasonEnabled:
		return "enabled"
	case ReasonDescriptorUnavailable:
		return "descriptor unavailable"
	case ReasonDescriptorEmpty:
		return "descriptor declares no packages"
	case ReasonVersionMismatch:
		return "version mismatch"
	default:
		return "unknown"
	}
}

// Decision is the session-wide substitution verdict.
type Decision struct {
	Enabled    bool
	Reason     Reason
	Mismatches []domain.VersionMismatch
}

// Disabled returns the decision for a session without a usable descriptor.
func Disabled() Decision {
	return Decision{Reason: ReasonDescriptorUnavailable}
}

// ShouldEnable compares the versions declared by descriptor against the
// installed packages. Packages the lookup cannot find are skipped. A single
// mismatch disables substitution for every package.
func ShouldEnable(descriptor *domain.BundleDescriptor, lookup ports.VersionLookup) Decision {
	if descriptor == nil {
		return Disabled()
	}

	names := descriptor.PackageNames()
	if len(names) == 0 {
		return Decision{Reason: ReasonDescriptorEmpty}
	}

	var mismatches []domain.VersionMismatch
	for _, name := range names {
		installed, err := lookup.InstalledVersion(name)
		if err != nil {
			continue
		}
		declared := descriptor.Packages[name].Version
		if installed != declared {
			mismatches = append(mismatches, domain.VersionMismatch{
				Package:   name,
				Declared:  declared,
				Installed: installed,
			})
		}
	}

	if len(mismatches) > 0 {
		return Decision{Reason: ReasonVersionMismatch, Mismatches: mismatches}
	}
	return Decision{Enabled: true, Reason: ReasonEnabled}
}
