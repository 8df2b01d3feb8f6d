package ops

import (
	"strconv"
	"strings"

	"github.com/jacksmith/plantpal/internal/model"
)

// Resolve finds the position of the plant a user refers to.
//
// A reference is tried, in order, as:
//   - a 1-based list number ("3")
//   - an ID or unique ID prefix ("1f0c")
//   - a case-insensitive name, exact match first, then unique name prefix
//
// Returns *model.NotFoundError when nothing matches and *model.AmbiguousError
// when more than one plant does.
func (c *Collection) Resolve(ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return -1, &model.NotFoundError{Ref: ref}
	}

	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(c.plants) {
			return -1, &model.IndexError{Index: n - 1, Len: len(c.plants)}
		}
		return n - 1, nil
	}

	lower := strings.ToLower(ref)

	// IDs are unique, so an exact ID wins outright
	var idMatches []int
	for i := range c.plants {
		id := strings.ToLower(c.plants[i].ID)
		if id == lower {
			return i, nil
		}
		if strings.HasPrefix(id, lower) {
			idMatches = append(idMatches, i)
		}
	}
	if len(idMatches) == 1 {
		return idMatches[0], nil
	}

	// Exact name
	var exact []int
	for i := range c.plants {
		if strings.ToLower(c.plants[i].Name) == lower {
			exact = append(exact, i)
		}
	}
	if len(exact) == 1 {
		return exact[0], nil
	}
	if len(exact) > 1 {
		return -1, c.ambiguous(ref, exact)
	}

	// Name prefix
	var prefixed []int
	for i := range c.plants {
		if strings.HasPrefix(strings.ToLower(c.plants[i].Name), lower) {
			prefixed = append(prefixed, i)
		}
	}
	switch len(prefixed) {
	case 0:
		if len(idMatches) > 1 {
			return -1, c.ambiguous(ref, idMatches)
		}
		return -1, &model.NotFoundError{Ref: ref}
	case 1:
		return prefixed[0], nil
	default:
		return -1, c.ambiguous(ref, prefixed)
	}
}

// ResolveID is Resolve returning the plant's ID instead of its position.
func (c *Collection) ResolveID(ref string) (string, error) {
	i, err := c.Resolve(ref)
	if err != nil {
		return "", err
	}
	return c.plants[i].ID, nil
}

func (c *Collection) ambiguous(ref string, indexes []int) error {
	matches := make([]string, 0, len(indexes))
	for _, i := range indexes {
		matches = append(matches, c.plants[i].Name+" ("+model.ShortID(c.plants[i].ID)+")")
	}
	return &model.AmbiguousError{Ref: ref, Matches: matches}
}
