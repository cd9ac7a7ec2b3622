package cmd

import (
	"log/slog"
	"os"

	"gorm.io/gorm"

	"lastmile/internal/adapters/out/notifier"
	"lastmile/internal/adapters/out/postgres"
	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/application/usecases/queries"
	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/core/ports"
)

// CompositionRoot wires adapters into use case handlers. It is the only
// place that knows concrete implementations.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	sink       ports.NotificationSink
	policy     shipment.OTPPolicy
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from config and an open
// database connection. The notification sink is chosen by credential
// presence: with SMTP credentials codes go out by mail, without them they
// are logged.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	policy := shipment.DefaultOTPPolicy()
	if config.OTPDigits != 0 || config.OTPTTL != 0 {
		digits := config.OTPDigits
		if digits == 0 {
			digits = shipment.DefaultOTPDigits
		}
		ttl := config.OTPTTL
		if ttl == 0 {
			ttl = shipment.DefaultOTPTTL
		}

		custom, err := shipment.NewOTPPolicy(digits, ttl)
		if err != nil {
			logger.Error("invalid OTP policy, falling back to default", "error", err)
		} else {
			policy = custom
		}
	}

	var sink ports.NotificationSink
	if config.SMTPUser != "" && config.SMTPPassword != "" {
		sink = notifier.NewSMTPNotifier(notifier.SMTPConfig{
			Host:     config.SMTPHost,
			Port:     config.SMTPPort,
			Username: config.SMTPUser,
			Password: config.SMTPPassword,
			From:     config.SMTPFrom,
		}, policy.TTL())
	} else {
		sink = notifier.NewLogNotifier(logger)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		sink:       sink,
		policy:     policy,
		logger:     logger,
	}
}

// Logger exposes the root logger for components outside the graph.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateIssueOTPCommandHandler() commands.IssueOTPCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewIssueOTPCommandHandler(f, c.sink, c.policy, c.logger)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreatePurgeExpiredOTPsCommandHandler() commands.PurgeExpiredOTPsCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeExpiredOTPsCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateRegisterAgentCommandHandler() commands.RegisterAgentCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAgentCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAgentHistoryQueryHandler() queries.GetAgentHistoryQueryHandler {
	return queries.NewGetAgentHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAuthenticateAgentQueryHandler() queries.AuthenticateAgentQueryHandler {
	return queries.NewAuthenticateAgentQueryHandler(c.gormDB)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncAgentUoWFactory func() commands.AgentUoW

func (f FuncAgentUoWFactory) Create() commands.AgentUoW {
	return f()
}
