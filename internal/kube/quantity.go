package kube

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseQuantity converts the narrow set of quantity encodings the
// metrics API emits into the portal's display units: nanocores become
// millicores, Ki becomes Mi, while m and Mi values pass through as-is
// and a bare integer is returned unchanged. Anything else is a parse
// error rather than a silent guess.
func ParseQuantity(value string) (int64, error) {
	switch {
	case strings.HasSuffix(value, "Ki"):
		v, err := parseQuantityInt(value, "Ki")
		if err != nil {
			return 0, err
		}
		return v / 1024, nil
	case strings.HasSuffix(value, "Mi"):
		return parseQuantityInt(value, "Mi")
	case strings.HasSuffix(value, "n"):
		v, err := parseQuantityInt(value, "n")
		if err != nil {
			return 0, err
		}
		return v / 1_000_000, nil
	case strings.HasSuffix(value, "m"):
		return parseQuantityInt(value, "m")
	}
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unrecognized quantity %q", value)
	}
	return v, nil
}

func parseQuantityInt(value, suffix string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSuffix(value, suffix), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unrecognized quantity %q", value)
	}
	return v, nil
}
