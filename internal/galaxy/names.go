package galaxy

import (
	"strconv"
	"strings"
)

// pickNames draws n planet names from catalogue in a seeded order. Each pass
// over the catalogue is a fresh shuffle; names from the second pass on get a
// " 2", " 3", ... suffix. A suffixed name that is already taken (the
// catalogue may hold both "Vega" and "Vega 2") moves on to the next suffix.
func pickNames(catalogue []string, n int, seed int64) []string {
	pool := uniqueNames(catalogue)
	if len(pool) == 0 || n <= 0 {
		return nil
	}

	rng := stream(seed, namesSalt)
	out := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	order := make([]string, len(pool))
	for cycle := 1; len(out) < n; cycle++ {
		copy(order, pool)
		for i := len(order) - 1; i > 0; i-- {
			j := rng.Intn(i + 1)
			order[i], order[j] = order[j], order[i]
		}
		for _, base := range order {
			if len(out) == n {
				break
			}
			name := base
			for suffix := cycle; ; suffix++ {
				if suffix > 1 {
					name = base + " " + strconv.Itoa(suffix)
				}
				if _, taken := seen[name]; !taken {
					break
				}
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}

// uniqueNames trims entries and drops blanks and repeats, keeping order.
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
