package redisx

import "time"

const (
	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"

	// Latest saved revision per catalog key: catalog_rev:{storage_key} -> revision id
	KeyCatalogRevision = "catalog_rev:%s"
)

var (
	TTLDedup    = 48 * time.Hour
	TTLRevision = 7 * 24 * time.Hour
)
