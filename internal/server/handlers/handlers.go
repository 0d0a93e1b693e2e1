package handlers

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/menumap/pkg/menus"
)

// Handlers provides access to all HTTP handlers.
// The dataset is immutable, so handlers share it without locking.
type Handlers struct {
	dataset   *menus.Dataset
	listMode  ListMode
	version   string
	startTime time.Time
	logger    *zerolog.Logger
}

// New creates a new Handlers instance.
func New(dataset *menus.Dataset, listMode ListMode, version string, logger *zerolog.Logger) *Handlers {
	if listMode == "" {
		listMode = ListAuto
	}
	return &Handlers{
		dataset:   dataset,
		listMode:  listMode,
		version:   version,
		startTime: time.Now(),
		logger:    logger,
	}
}
