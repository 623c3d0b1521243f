package chat

import (
	"context"
	"time"

	"foodchat/internal/catalog"
	"foodchat/internal/database"
	"foodchat/internal/dialogue"
	"foodchat/internal/logger"
	"foodchat/internal/messaging"
	"foodchat/internal/models"
)

// OrderPublisher hands confirmed orders and abandoned utterances off to
// the message broker
type OrderPublisher interface {
	PublishOrderConfirmed(ctx context.Context, msg *models.OrderConfirmedMessage) error
	PublishUnknownUtterance(ctx context.Context, msg *models.UnknownUtteranceMessage) error
}

// HistoryStore persists conversation history
type HistoryStore interface {
	SaveExchange(ctx context.Context, sessionID, requestID, intent, userMessage, botResponse string) error
}

// Service processes chat turns for the dialogue service
type Service struct {
	db         *database.DB
	conn       *messaging.Connection
	history    HistoryStore
	publisher  OrderPublisher
	dispatcher *dialogue.Dispatcher
	sessions   *sessionRegistry
	logger     *logger.Logger
}

// NewService creates a chat service. db and conn may be nil in tests;
// history writes and health checks degrade gracefully without them.
func NewService(db *database.DB, conn *messaging.Connection, publisher OrderPublisher,
	gateway catalog.Gateway, maxFallbacks int, log *logger.Logger) *Service {

	s := &Service{
		db:         db,
		conn:       conn,
		publisher:  publisher,
		dispatcher: dialogue.NewDispatcher(gateway, maxFallbacks, log),
		sessions:   newSessionRegistry(),
		logger:     log,
	}
	if db != nil {
		s.history = NewRepository(db)
	}
	return s
}

// HandleChat processes one chat turn. It never fails the conversation:
// every outcome is a chat response.
func (s *Service) HandleChat(ctx context.Context, req *models.ChatRequest, requestID string) *models.ChatResponse {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = requestID
	}

	sess := s.sessions.get(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	result := s.dispatcher.HandleTurn(ctx, sess.state, req.Turn(), requestID)
	message := result.Message

	if result.Confirmed != nil {
		message = s.handOffOrder(ctx, sess, sessionID, requestID, result.Confirmed, message)
	}

	if result.RevertTurn {
		s.captureUnknownUtterance(ctx, sessionID, requestID, req)
	}

	s.saveHistory(ctx, sessionID, requestID, req, message)

	response := &models.ChatResponse{SessionID: sessionID}
	if message != "" {
		response.Responses = append(response.Responses, models.BotResponse{Text: message})
	}
	return response
}

// handOffOrder publishes the confirmed order and resets the session. A
// publish failure leaves the order intact so the user can confirm again.
func (s *Service) handOffOrder(ctx context.Context, sess *session, sessionID, requestID string,
	confirmed *dialogue.ConfirmedOrder, message string) string {

	orderMsg := &models.OrderConfirmedMessage{
		SessionID:   sessionID,
		Lines:       confirmed.Lines,
		Total:       confirmed.Total,
		Discount:    confirmed.Discount,
		Payable:     confirmed.Payable,
		Promotion:   confirmed.Promotion,
		ConfirmedAt: time.Now().UTC(),
	}

	if err := s.publisher.PublishOrderConfirmed(ctx, orderMsg); err != nil {
		s.logger.Error("order_publish_failed", "Failed to hand off confirmed order", requestID, err, map[string]interface{}{
			"session_id": sessionID,
			"payable":    confirmed.Payable,
		})
		return dialogue.MsgServiceBusy
	}

	s.logger.Info("order_confirmed", "Order handed off to kitchen", requestID, map[string]interface{}{
		"session_id": sessionID,
		"lines":      len(confirmed.Lines),
		"payable":    confirmed.Payable,
	})

	sess.state.ClearOrderSession()
	return message
}

// captureUnknownUtterance publishes the utterance the fallback loop gave
// up on; failure is logged, never surfaced
func (s *Service) captureUnknownUtterance(ctx context.Context, sessionID, requestID string, req *models.ChatRequest) {
	msg := &models.UnknownUtteranceMessage{
		SessionID:  sessionID,
		Intent:     req.Intent,
		Utterance:  req.Message,
		CapturedAt: time.Now().UTC(),
	}

	if err := s.publisher.PublishUnknownUtterance(ctx, msg); err != nil {
		s.logger.Error("unknown_utterance_publish_failed", "Failed to capture unknown utterance", requestID, err, map[string]interface{}{
			"session_id": sessionID,
		})
	}
}

// saveHistory records the exchange; failure is logged, never surfaced
func (s *Service) saveHistory(ctx context.Context, sessionID, requestID string, req *models.ChatRequest, botResponse string) {
	if s.history == nil {
		return
	}

	if err := s.history.SaveExchange(ctx, sessionID, requestID, req.Intent, req.Message, botResponse); err != nil {
		s.logger.Error("history_save_failed", "Failed to save conversation history", requestID, err, map[string]interface{}{
			"session_id": sessionID,
		})
	}
}

// HealthCheck reports whether the database and message broker are reachable
func (s *Service) HealthCheck(ctx context.Context) bool {
	healthy := true

	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			s.logger.Error("health_check_failed", "Database unreachable", "", err, nil)
			healthy = false
		}
	}

	if s.conn != nil && s.conn.IsClosed() {
		s.logger.Error("health_check_failed", "RabbitMQ connection closed", "", nil, nil)
		healthy = false
	}

	return healthy
}
