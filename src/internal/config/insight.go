package config

import (
	"fleet-service/src/internal/gateway/insight"
	"fleet-service/src/pkg/log"

	"github.com/spf13/viper"
)

func NewInsightClient(v *viper.Viper, logger log.Log) *insight.Client {
	client, err := insight.NewClient(v, logger)
	if err != nil {
		logger.Error("insight init", err.Error(), "config", "")
		return insight.NewDisabledClient(logger)
	}
	return client
}
