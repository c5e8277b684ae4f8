package util

import (
	"fmt"

	"github.com/blang/semver/v4"
)

// VersionComparison describes how a target stack version relates to the current one.
type VersionComparison int

const (
	// VersionUnknown is used when the versions could not be compared
	VersionUnknown VersionComparison = iota - 2
	// VersionDowngrade indicates the target version is lower than the current version
	VersionDowngrade
	// VersionEqual indicates the versions are equal
	VersionEqual
	// VersionUpgrade indicates the target version is higher than the current version
	VersionUpgrade
)

// ParseStackVersion parses a stack version such as "2.2" or "2.2.0" as semver.
func ParseStackVersion(version string) (semver.Version, error) {
	v, err := semver.ParseTolerant(version)
	if err != nil {
		return semver.Version{}, fmt.Errorf("invalid stack version %q: %w", version, err)
	}
	return v, nil
}

// CompareStackVersions parses both versions and reports whether moving from currentVersion
// to targetVersion is a downgrade, a no-op or an upgrade.
func CompareStackVersions(currentVersion string, targetVersion string) (VersionComparison, error) {
	cV, err := ParseStackVersion(currentVersion)
	if err != nil {
		return VersionUnknown, err
	}
	tV, err := ParseStackVersion(targetVersion)
	if err != nil {
		return VersionUnknown, err
	}

	switch tV.Compare(cV) {
	case -1:
		return VersionDowngrade, nil
	case 0:
		return VersionEqual, nil
	case 1:
		return VersionUpgrade, nil
	default:
		return VersionUnknown, fmt.Errorf("semver comparison failed for unknown reason. Versions %s & %s", cV, tV)
	}
}

// IsMajorVersionJump reports whether the two versions differ in their major component.
func IsMajorVersionJump(currentVersion string, targetVersion string) (bool, error) {
	cV, err := ParseStackVersion(currentVersion)
	if err != nil {
		return false, err
	}
	tV, err := ParseStackVersion(targetVersion)
	if err != nil {
		return false, err
	}
	return cV.Major != tV.Major, nil
}
