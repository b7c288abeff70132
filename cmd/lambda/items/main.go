package main

import (
	"context"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"hockeystats-api/internal/config"
	"hockeystats-api/internal/handlers"
	"hockeystats-api/pkg/lambda"
)

var adapter *lambda.Adapter

// init runs once per execution environment; warm invocations reuse the
// store client built here.
func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	cm := lambda.GetConnectionManager()
	if err := cm.Initialize(context.Background(), cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to initialize container")
	}

	container, err := cm.GetContainer(context.Background())
	if err != nil {
		logrus.WithError(err).Fatal("Failed to get container")
	}

	itemHandler := handlers.NewItemHandler(container.ItemService, container.Logger)
	adapter = lambda.NewAdapter(itemHandler.Handler(), container.Logger)

	container.Logger.WithFields(logrus.Fields{
		"table":      cfg.Store.TableName,
		"store_type": cfg.Store.Type,
		"mode":       config.GetDeploymentMode(),
	}).Info("Item function initialized")
}

func main() {
	awslambda.Start(adapter.Invoke)
}
