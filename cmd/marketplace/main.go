package main

import (
	appointmentshandler "handyhub/internal/appointments/handler"
	appointmentsrepository "handyhub/internal/appointments/repository"
	appointmentsservice "handyhub/internal/appointments/service"
	appointmentsvalidator "handyhub/internal/appointments/validator"
	bookingshandler "handyhub/internal/bookings/handler"
	bookingsrepository "handyhub/internal/bookings/repository"
	bookingsservice "handyhub/internal/bookings/service"
	bookingsvalidator "handyhub/internal/bookings/validator"
	calendarhandler "handyhub/internal/calendar/handler"
	calendarservice "handyhub/internal/calendar/service"
	cataloghandler "handyhub/internal/catalog/handler"
	catalogrepository "handyhub/internal/catalog/repository"
	catalogservice "handyhub/internal/catalog/service"
	"handyhub/internal/health"
	jobpostshandler "handyhub/internal/jobposts/handler"
	jobpostsrepository "handyhub/internal/jobposts/repository"
	jobpostsservice "handyhub/internal/jobposts/service"
	jobpostsvalidator "handyhub/internal/jobposts/validator"
	messaginghandler "handyhub/internal/messaging/handler"
	messagingrepository "handyhub/internal/messaging/repository"
	messagingservice "handyhub/internal/messaging/service"
	messagingvalidator "handyhub/internal/messaging/validator"
	notificationshandler "handyhub/internal/notifications/handler"
	notificationsrepository "handyhub/internal/notifications/repository"
	notificationsservice "handyhub/internal/notifications/service"
	"handyhub/internal/store"
	"handyhub/pkg/app"
	"handyhub/pkg/config"
	"handyhub/pkg/contracts"
	"handyhub/pkg/events"
	"handyhub/pkg/kafka"
	kafka_middleware "handyhub/pkg/kafka/middleware"
)

const ServiceName = "marketplace"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Marketplace service")

	var s *store.Store
	if cfg.SeedDemoData {
		s = store.NewSeeded(cfg.Now(), cfg.Location)
		cfg.Log.Info("Store seeded with demo data", "bookings", s.Bookings.Len(), "providers", s.Providers.Len())
	} else {
		s = store.New()
	}

	publisher, metrics, eventsMode := initPublisher(cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(health.NewHandler(eventsMode, cfg.Log), initHandlers(cfg, s, publisher)...)
	if metrics != nil {
		serverApp.OnShutdown("kafka metrics", func() error {
			snap := metrics.Snapshot()
			cfg.Log.Info("Event publishing totals",
				"published", snap.Published,
				"failed", snap.Failed,
				"avg_publish_duration", snap.AvgPublishDuration,
			)
			return nil
		})
	}
	serverApp.OnShutdown("event publisher", publisher.Close)
	serverApp.Run()
}

// initPublisher connects the Kafka producer when brokers are configured and
// falls back to dropping events otherwise.
func initPublisher(cfg *config.Config) (events.Publisher, *kafka_middleware.Metrics, string) {
	if cfg.Kafka == nil || !cfg.Kafka.Enabled() {
		cfg.Log.Info("Event publishing disabled: no Kafka brokers configured")
		return events.Noop{}, nil, "disabled"
	}

	producer, err := kafka.NewProducer(cfg.Kafka, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	metrics := kafka_middleware.NewMetrics()
	producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
	producer.Use(metrics.Middleware())

	cfg.Log.Info("Event publishing enabled", "topic", producer.Topic())
	return events.NewKafkaPublisher(producer, cfg.Kafka, ServiceName, cfg.Log), metrics, "kafka"
}

func initHandlers(cfg *config.Config, s *store.Store, publisher events.Publisher) []contracts.Handler {
	bookingRepo := bookingsrepository.NewMemoryBookingRepository(s)
	bookingService := bookingsservice.NewBookingService(
		bookingRepo,
		bookingsvalidator.NewBookingValidator(cfg.Log),
		publisher,
		cfg,
	)

	jobPostService := jobpostsservice.NewJobPostService(
		jobpostsrepository.NewMemoryJobPostRepository(s),
		jobpostsvalidator.NewJobPostValidator(cfg.Log),
		publisher,
		cfg,
	)

	appointmentService := appointmentsservice.NewAppointmentService(
		appointmentsrepository.NewMemoryAppointmentRepository(s),
		appointmentsvalidator.NewAppointmentValidator(cfg.AppointmentMinDurationMin, cfg.AppointmentMaxDurationMin, cfg.Log),
		publisher,
		cfg,
	)

	messagingService := messagingservice.NewMessagingService(
		messagingrepository.NewMemoryThreadRepository(s),
		messagingvalidator.NewMessageValidator(cfg.Log),
		publisher,
		cfg,
	)

	notificationService := notificationsservice.NewNotificationService(
		notificationsrepository.NewMemoryNotificationRepository(s, &notificationsrepository.ReadState{}),
		publisher,
		cfg,
	)

	cfg.Log.Info("Marketplace services initialized")
	return []contracts.Handler{
		calendarhandler.NewCalendarHandler(calendarservice.NewCalendarService(bookingRepo, cfg), cfg.Log),
		bookingshandler.NewBookingHandler(bookingService, cfg.Log),
		jobpostshandler.NewJobPostHandler(jobPostService, cfg.Log),
		appointmentshandler.NewAppointmentHandler(appointmentService, cfg.Log),
		messaginghandler.NewMessagingHandler(messagingService, cfg.Log),
		cataloghandler.NewCatalogHandler(catalogservice.NewCatalogService(catalogrepository.NewMemoryCatalogRepository(s), cfg), cfg.Log),
		notificationshandler.NewNotificationHandler(notificationService, cfg.Log),
	}
}
