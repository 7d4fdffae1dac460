package worker

import (
	"context"
	"encoding/json"
	"time"

	"moviehub/pkg/config"
	"moviehub/pkg/database"
	"moviehub/pkg/email"
	"moviehub/pkg/logger"
	"moviehub/pkg/queue"
	recipientRepo "moviehub/service-worker/internal/repository/recipient"
)

// Worker consumes notification queues and turns events into emails.
type Worker struct {
	config        *config.Config
	emailProvider email.Provider
	recipients    recipientRepo.Repository
}

// NewWorker wires the database and the email provider.
func NewWorker(cfg *config.Config) *Worker {
	db, err := database.NewPgDB(cfg)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}

	emailProvider, err := email.NewEmailProvider(context.Background(), &cfg.Email)
	if err != nil {
		logger.Fatalf("failed to initialize email provider: %v", err)
	}

	return &Worker{
		config:        cfg,
		emailProvider: emailProvider,
		recipients:    recipientRepo.NewRepository(db),
	}
}

// Run starts one consumer per queue and blocks forever.
func (w *Worker) Run() {
	go queue.StartConsumer(w.config.AMQP.URL, queue.QueueVerification, w.handleVerification)

	logger.Infof("worker consuming %s and %s", queue.QueueVerification, queue.QueueMovieCreated)
	queue.StartConsumer(w.config.AMQP.URL, queue.QueueMovieCreated, w.handleMovieCreated)
}

// handleVerification sends the verification email to one recipient.
func (w *Worker) handleVerification(body []byte) error {
	var event queue.VerificationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	data := email.VerificationTemplateData{
		Username:  event.Username,
		AppName:   w.config.Email.FromName,
		VerifyURL: event.VerifyURL,
	}

	err := w.emailProvider.SendTemplateEmail(ctx, []string{event.Email}, email.TemplateVerification, data)
	if err != nil {
		return err
	}

	logger.Infof("verification email sent to %s", event.Email)
	return nil
}

// handleMovieCreated broadcasts the new-movie email to every user with a
// non-empty address.
func (w *Worker) handleMovieCreated(body []byte) error {
	var event queue.MovieCreatedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return err
	}

	emails, err := w.recipients.Emails()
	if err != nil {
		return err
	}
	if len(emails) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	data := email.NewMovieTemplateData{
		Title:    event.Title,
		Duration: event.Duration,
		Language: event.Language,
		AppName:  w.config.Email.FromName,
	}

	// one message per recipient; a bad address must not block the rest
	sent := 0
	for _, addr := range emails {
		err := w.emailProvider.SendTemplateEmail(ctx, []string{addr}, email.TemplateNewMovie, data)
		if err != nil {
			logger.Errorf(err, "failed to send new-movie email to %s", addr)
			continue
		}
		sent++
	}

	logger.Infof("new-movie broadcast for %q sent to %d/%d recipients", event.Title, sent, len(emails))
	return nil
}
