package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"gradientspace.dev/internal/metrics"
	"gradientspace.dev/internal/models"
)

// Publisher delivers a submitted inquiry to a downstream system
type Publisher interface {
	Name() string
	Publish(ctx context.Context, inq models.Inquiry) error
}

// InquiryService is the collaborator that receives submitted contact forms.
// It strips markup from the values, stamps the inquiry and fans it out to
// every publisher.
type InquiryService struct {
	publishers []Publisher
	policy     *bluemonday.Policy
	metrics    *metrics.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// NewInquiryService creates a new InquiryService
func NewInquiryService(logger *zap.Logger, m *metrics.Metrics, publishers ...Publisher) *InquiryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InquiryService{
		publishers: publishers,
		policy:     bluemonday.StrictPolicy(),
		metrics:    m,
		logger:     logger,
		now:        time.Now,
	}
}

// Accept publishes a contact form snapshot to all publishers. It fails if
// any publisher fails.
func (s *InquiryService) Accept(ctx context.Context, form models.ContactFormData) error {
	inq := models.Inquiry{
		ID:         uuid.NewString(),
		ReceivedAt: s.now().UTC(),
		Form:       s.clean(form),
	}

	var errs []error
	for _, p := range s.publishers {
		if err := p.Publish(ctx, inq); err != nil {
			s.logger.Error("failed to publish inquiry",
				zap.String("inquiry", inq.ID),
				zap.String("publisher", p.Name()),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		s.metrics.InquiryFailed()
		return err
	}
	s.metrics.InquiryAccepted(inq.Form.Package)
	return nil
}

// clean strips any markup from the visitor's values
func (s *InquiryService) clean(form models.ContactFormData) models.ContactFormData {
	strip := func(v string) string {
		return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(v)))
	}
	return models.ContactFormData{
		Name:    strip(form.Name),
		Email:   strip(form.Email),
		Package: strip(form.Package),
		Message: strip(form.Message),
	}
}

// LogPublisher writes inquiries to the application log
type LogPublisher struct {
	logger *zap.Logger
}

// NewLogPublisher creates a new LogPublisher
func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Name implements Publisher
func (p *LogPublisher) Name() string { return "log" }

// Publish implements Publisher
func (p *LogPublisher) Publish(_ context.Context, inq models.Inquiry) error {
	p.logger.Info("Inquiry submitted",
		zap.String("inquiry", inq.ID),
		zap.Time("received_at", inq.ReceivedAt),
		zap.String("name", inq.Form.Name),
		zap.String("email", inq.Form.Email),
		zap.String("package", inq.Form.Package),
		zap.String("message", inq.Form.Message))
	return nil
}

const natsFlushTimeout = 5 * time.Second

// NATSPublisher publishes inquiries as JSON on a NATS subject
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
}

// NewNATSPublisher connects to the NATS server at url
func NewNATSPublisher(url, subject string, logger *zap.Logger) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("gradientspace"),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("disconnected from NATS", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("reconnected to NATS", zap.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: conn, subject: subject}, nil
}

// Name implements Publisher
func (p *NATSPublisher) Name() string { return "nats" }

// Publish implements Publisher. It waits for the server to acknowledge the
// flush so a failed delivery surfaces to the visitor.
func (p *NATSPublisher) Publish(ctx context.Context, inq models.Inquiry) error {
	data, err := json.Marshal(inq)
	if err != nil {
		return fmt.Errorf("encode inquiry: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publish to %s: %w", p.subject, err)
	}
	// FlushWithContext refuses contexts without a deadline.
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, natsFlushTimeout)
		defer cancel()
	}
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("flush to %s: %w", p.subject, err)
	}
	return nil
}

// Close drains the connection
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}
