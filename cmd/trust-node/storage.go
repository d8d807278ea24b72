package main

import (
	storageconfig "github.com/vanet-dev/trust-node/cmd/trust-node/config/storage"
	cachestorage "github.com/vanet-dev/trust-node/pkg/services/trust/storage/cache"
	"github.com/vanet-dev/trust-node/pkg/services/trust/storage/persistent"
	"go.uber.org/zap"
)

func initStorage(c *cfg) {
	path := storageconfig.Path(c.appCfg)

	persistentStorage, err := persistent.New(path)
	fatalOnErr(err)

	cached, err := cachestorage.New(persistentStorage, storageconfig.CacheSize(c.appCfg))
	fatalOnErr(err)

	c.cfgStorage.persistent = persistentStorage
	c.cfgStorage.cached = cached

	c.log.Info("record storage opened",
		zap.String("path", path),
	)
}
