package main

import (
	"floorspace/internal/metadata"
	"floorspace/pkg/logger"
)

// setupMetadataRegistry builds the keymap registry and logs what it serves.
func setupMetadataRegistry(log *logger.Logger) *metadata.Registry {
	reg := metadata.Default()

	for _, def := range reg.List() {
		log.Debugw("entity type registered",
			"type", def.Type,
			"display_name", def.DisplayName,
			"fields", len(def.Fields),
			"creatable", def.Creatable(),
		)
	}
	log.Infow("metadata registry initialized",
		"entity_types", len(reg.List()),
		"creatable", len(reg.Creatable()),
	)

	return reg
}
