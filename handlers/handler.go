// Package handlers implements the JSON API over the store.
package handlers

import (
	"context"
	"io"

	"go.uber.org/zap"

	"instagram/store"
)

// Uploader stores a media file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, size int64, contentType, ext string) (string, error)
}

type Handler struct {
	store   *store.Store
	uploads Uploader
	log     *zap.Logger
}

// New builds the handlers. uploads may be nil, which disables media uploads.
func New(s *store.Store, uploads Uploader, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{store: s, uploads: uploads, log: log}
}
