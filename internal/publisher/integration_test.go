//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"dealscout/internal/domain"
	"dealscout/testdata/utils"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishSold() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-sold",
		RoutingKey: "test-routing-key-sold",
		QueueName:  "test-queue-sold",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	soldAt := time.Now().Truncate(time.Millisecond)
	listing := &domain.Listing{
		ID:                42,
		Platform:          "craigslist",
		PlatformListingID: "cl-42",
		Title:             "2018 Toyota Camry SE",
		Price:             15500,
		Make:              utils.Ptr("toyota"),
		Model:             utils.Ptr("camry"),
		Year:              utils.Ptr(2018),
		Mileage:           utils.Ptr(62000),
		Status:            domain.StatusSold,
		SoldAt:            &soldAt,
		DaysOnMarket:      utils.Ptr(9),
	}

	err = pub.PublishSold(s.ctx, listing)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	var received SoldEvent
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("listing_sold", received.Event)
	s.Equal(int64(42), received.Listing.ID)
	s.Equal("craigslist", received.Listing.Platform)
	s.Equal("cl-42", received.Listing.PlatformListingID)
	s.Equal(domain.StatusSold, received.Listing.Status)
	s.Require().NotNil(received.Listing.DaysOnMarket)
	s.Equal(9, *received.Listing.DaysOnMarket)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_MessagePersistence() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-persist",
		RoutingKey: "test-routing-key-persist",
		QueueName:  "test-queue-persist",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	listing := &domain.Listing{
		ID:                7,
		Platform:          "facebook",
		PlatformListingID: "fb-7",
		Title:             "2015 Honda Fit",
		Price:             8200,
		Status:            domain.StatusSold,
	}

	err = pub.PublishSold(s.ctx, listing)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	s.Equal("application/json", msg.ContentType)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}
