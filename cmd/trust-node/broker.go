package main

import (
	natsconfig "github.com/vanet-dev/trust-node/cmd/trust-node/config/nats"
	brokernats "github.com/vanet-dev/trust-node/pkg/services/trust/broker/nats"
	"go.uber.org/zap"
)

func initBroker(c *cfg) {
	c.cfgBroker.endpoint = natsconfig.Endpoint(c.appCfg)

	c.cfgBroker.listener = brokernats.NewListener(
		c.cfgTrust.dispatcher,
		brokernats.WithLogger(c.log),
		brokernats.WithSubjectPrefix(natsconfig.SubjectPrefix(c.appCfg)),
		brokernats.WithTimeout(natsconfig.Timeout(c.appCfg)),
		brokernats.WithConnectionName("trust-node"),
	)
}

func serveBroker(c *cfg) {
	err := c.cfgBroker.listener.Connect(c.ctx, c.cfgBroker.endpoint)
	fatalOnErr(err)

	err = c.cfgBroker.listener.Listen()
	fatalOnErr(err)

	c.log.Info("listening for trust requests",
		zap.String("endpoint", c.cfgBroker.endpoint),
	)
}
