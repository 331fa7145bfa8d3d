// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// NonNilUUID rejects the all-zero GUID.
func NonNilUUID(msg ...string) Predicate[uuid.UUID] {
	return newPredicate("non_nil_uuid",
		func(v uuid.UUID) bool { return v != uuid.Nil },
		"GUID cannot be empty", msg)
}

// UUIDVersion accepts GUIDs of the given version (the high nibble of the
// time_hi_and_version field).
func UUIDVersion(version int, msg ...string) Predicate[uuid.UUID] {
	return newPredicate("uuid_version",
		func(v uuid.UUID) bool { return int(v.Version()) == version },
		fmt.Sprintf("GUID must be version %d", version), msg)
}

// OneOfUUIDs accepts only the listed GUIDs.
func OneOfUUIDs(allowed []uuid.UUID, msg ...string) Predicate[uuid.UUID] {
	set := slices.Clone(allowed)
	return newPredicate("one_of_uuids",
		func(v uuid.UUID) bool { return slices.Contains(set, v) },
		"GUID must be one of the allowed values", msg)
}

// NoneOfUUIDs rejects the listed GUIDs.
func NoneOfUUIDs(excluded []uuid.UUID, msg ...string) Predicate[uuid.UUID] {
	set := slices.Clone(excluded)
	return newPredicate("none_of_uuids",
		func(v uuid.UUID) bool { return !slices.Contains(set, v) },
		"GUID is not allowed", msg)
}
