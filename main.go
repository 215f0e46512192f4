package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/kod2ulz/fintava-go/api"
	"github.com/kod2ulz/fintava-go/client"
)

func main() {
	log := logrus.New()
	ctx := context.Background()

	fintava, err := api.NewServer(log, api.WithConfig(client.NewConfig()))
	if err != nil {
		log.WithError(err).Fatal("failed to initialise fintava api")
	}

	banks, err := fintava.Bank.List(ctx, "NG")
	if err != nil {
		log.WithError(err).Fatal("bank listing encountered error")
	}
	log.WithField("banks", len(banks.Data)).Info("fintava client ready")
}
