// Package version maintains the persisted odometer-style version counters
// for the full and i18n emission pipelines.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Default is the version reported when no counter has been persisted yet.
var Default = Version{Major: 1}

// Version is a 4-component counter serialized as v<major>.<minor>.<patch>.<build>.
// Each component below major is a single base-10 digit: incrementing the
// build past 9 carries into the patch, and so on up the components.
type Version struct {
	Major, Minor, Patch, Build int
}

// Parse reads a version string. A leading "v" is optional; missing
// components are treated as zero, so "v1.2" parses as v1.2.0.0.
func Parse(s string) Version {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	parts := strings.Split(s, ".")

	comp := func(i int) int {
		if i >= len(parts) {
			return 0
		}
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 {
			return 0
		}
		return n
	}

	return Version{
		Major: comp(0),
		Minor: comp(1),
		Patch: comp(2),
		Build: comp(3),
	}
}

// String renders the canonical v-prefixed form.
func (v Version) String() string {
	return fmt.Sprintf("v%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Build)
}

// Increment adds one build unit, carrying any component that reaches 10
// into the next more significant component.
func (v Version) Increment() Version {
	v.Build++
	if v.Build >= 10 {
		v.Build = 0
		v.Patch++
	}
	if v.Patch >= 10 {
		v.Patch = 0
		v.Minor++
	}
	if v.Minor >= 10 {
		v.Minor = 0
		v.Major++
	}
	return v
}
