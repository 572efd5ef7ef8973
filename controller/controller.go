package controller

import (
	"gingallery/config"
	"gingallery/database"
	"gingallery/storage"
)

// Controller carries the injected dependencies every handler needs: the
// immutable process config, the metadata store and the blob store.
type Controller struct {
	cfg   *config.Config
	db    database.DB
	store storage.Store
}

func New(cfg *config.Config, db database.DB, store storage.Store) *Controller {
	return &Controller{cfg: cfg, db: db, store: store}
}

func (ct *Controller) collection(name string) database.Collection {
	return ct.db.Collection(name)
}
