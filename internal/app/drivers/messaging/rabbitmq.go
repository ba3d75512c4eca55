package messaging

import (
	"bhzdravlje-service/internal/app/config"
	"log"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const connectionName = "bhzdravlje-service"

// NewRabbitMQ dials the broker that carries notification emails. The
// connection is named so it shows up as this service in the management UI.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	cfg := driverConfig.RabbitMQ
	brokerURL := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(cfg.Username, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, cfg.Port),
		Path:   "/" + strings.TrimPrefix(cfg.VHost, "/"),
	}

	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName(connectionName)

	conn, err := amqp091.DialConfig(brokerURL.String(), amqp091.Config{
		Heartbeat:  time.Duration(cfg.HeartbeatInSeconds) * time.Second,
		Locale:     "en_US",
		Properties: properties,
	})
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ at %s: %s", brokerURL.Redacted(), err.Error())
	}
	log.Printf("Successfully connected to rabbitMQ vhost %q", cfg.VHost)
	return conn
}
