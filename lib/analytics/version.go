package analytics

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Version is a semantic version. Pre-release and build metadata are not
// part of a signature.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses "1.3.3", "v1.3.3", "1.3" or "1.3.3-rc.1".
// Missing minor and patch components default to zero.
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimSpace(s)
	if !strings.HasPrefix(raw, "v") {
		raw = "v" + raw
	}
	canonical := semver.Canonical(raw)
	if canonical == "" {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	canonical = strings.TrimSuffix(canonical, semver.Prerelease(canonical))

	parts := strings.SplitN(strings.TrimPrefix(canonical, "v"), ".", 3)
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v Version) validate() error {
	if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
		return fmt.Errorf("%w: negative component in %s", ErrInvalidVersion, v)
	}
	return nil
}

// encodeVersion packs the first n components of v (n is 2 or 3) into n
// characters.
//
// Components are reduced to two decimal digits and written in reverse order,
// so 1.3.3 becomes the decimal number 030301, emitted as n alphabet
// characters. A packed value that does not fit in 6*n bits is rejected.
func encodeVersion(v Version, n int) (string, error) {
	comps := [3]int{v.Major, v.Minor, v.Patch}
	var packed uint64
	for i := n - 1; i >= 0; i-- {
		packed = packed*100 + uint64(comps[i]%100)
	}
	if packed >= 1<<(groupBits*n) {
		return "", fmt.Errorf("%w: %s does not fit in %d characters", ErrInvalidVersion, v, n)
	}
	return packGroups(packed, n), nil
}

// decodeVersion reverses encodeVersion.
func decodeVersion(s string) (Version, bool) {
	packed, ok := unpackGroups(s)
	if !ok {
		return Version{}, false
	}
	var comps [3]int
	for i := 0; i < len(s); i++ {
		comps[i] = int(packed % 100)
		packed /= 100
	}
	if packed != 0 {
		return Version{}, false
	}
	return Version{Major: comps[0], Minor: comps[1], Patch: comps[2]}, true
}
