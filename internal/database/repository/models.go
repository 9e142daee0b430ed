package repository

import "time"

// StorageEntry represents a local_storage row.
type StorageEntry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// PageLogEntry represents one device page mutation.
type PageLogEntry struct {
	ID             string
	Op             string
	ContainerTotal int
	Payload        string
	Result         string
	CreatedAt      time.Time
}

// Page log operations.
const (
	OpCreate  = "create"
	OpRebuild = "rebuild"
	OpUpgrade = "upgrade"
)
