package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func parseUUIDs(args []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(args))
	for _, arg := range args {
		id, err := uuid.Parse(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", arg, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseGroups parses --group values, each a comma separated list of
// episode ids.
func parseGroups(values []string) ([][]uuid.UUID, error) {
	groups := make([][]uuid.UUID, 0, len(values))
	for _, value := range values {
		group, err := parseUUIDs(strings.Split(value, ","))
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", value, err)
		}
		groups = append(groups, group)
	}
	return groups, nil
}
