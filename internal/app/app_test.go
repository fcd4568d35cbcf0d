package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/storefront/internal/config"
	"github.com/GlebRadaev/storefront/pkg/events"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestBuildInfraDefaults() {
	infra, err := s.app.buildInfra(context.Background(), &config.Config{JWTSecret: "secret"})

	s.Require().NoError(err)
	s.Nil(infra.Locker)
	s.Nil(infra.Publisher)
	s.NotNil(infra.Metrics)
	s.NotNil(infra.JWT)
	s.Empty(s.app.closers)

	families, err := s.app.registry.Gather()
	s.Require().NoError(err)
	s.NotEmpty(families)
}

func (s *ApplicationSuite) TestBuildInfraKafka() {
	infra, err := s.app.buildInfra(context.Background(), &config.Config{
		JWTSecret:        "secret",
		KafkaBrokers:     []string{"localhost:9092"},
		KafkaOrdersTopic: "orders",
	})

	s.Require().NoError(err)
	s.IsType(&events.KafkaPublisher{}, infra.Publisher)
	s.Len(s.app.closers, 1)
	s.NoError(s.app.closers[0].Close())
}

func (s *ApplicationSuite) TestBuildInfraBadRedisAddress() {
	_, err := s.app.buildInfra(context.Background(), &config.Config{
		JWTSecret:       "secret",
		RedisAddress:    "redis://localhost:notaport",
		CheckoutLockTTL: time.Second,
	})

	s.Require().Error(err)
	s.Contains(err.Error(), "can't connect to redis")
}
