package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/saulo-duarte/genai-learning-games/internal/config"
	"github.com/saulo-duarte/genai-learning-games/internal/container"
)

func main() {
	c, err := container.New(context.Background())
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to start API")
	}

	adapter := chiadapter.New(c.Router())
	lambda.Start(adapter.ProxyWithContext)
}
