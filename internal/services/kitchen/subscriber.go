package kitchen

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"foodchat/internal/logger"
	"foodchat/internal/messaging"
	"foodchat/internal/models"
)

// Subscriber consumes confirmed orders and prints kitchen tickets
type Subscriber struct {
	consumer *messaging.Consumer
	logger   *logger.Logger

	shutdown chan os.Signal
	done     chan bool
}

// NewSubscriber creates a new kitchen subscriber
func NewSubscriber(consumer *messaging.Consumer, log *logger.Logger) *Subscriber {
	return &Subscriber{
		consumer: consumer,
		logger:   log,
		shutdown: make(chan os.Signal, 1),
		done:     make(chan bool, 1),
	}
}

// Start starts the kitchen subscriber
func (s *Subscriber) Start(ctx context.Context) error {
	requestID := logger.GenerateRequestID()

	signal.Notify(s.shutdown, syscall.SIGINT, syscall.SIGTERM)

	s.logger.Info("service_started", "Kitchen subscriber started", requestID, nil)

	go func() {
		if err := s.consumer.StartConsuming(ctx, s.handleOrder); err != nil {
			s.logger.Error("consumer_failed", "Kitchen consumer failed", requestID, err, nil)
		}
		s.done <- true
	}()

	select {
	case <-s.shutdown:
		s.logger.Info("graceful_shutdown", "Received shutdown signal", requestID, nil)
		return s.gracefulShutdown(requestID)
	case <-s.done:
		return nil
	}
}

// handleOrder processes one confirmed order message
func (s *Subscriber) handleOrder(ctx context.Context, body []byte) error {
	requestID := logger.GenerateRequestID()

	var order models.OrderConfirmedMessage
	if err := messaging.ParseMessage(body, &order); err != nil {
		s.logger.Error("message_parsing_failed", "Failed to parse confirmed order", requestID, err, nil)
		return fmt.Errorf("failed to parse confirmed order: %w", err)
	}

	fmt.Println(formatTicket(&order))

	s.logger.Info("order_received", "Confirmed order received", requestID, map[string]interface{}{
		"session_id": order.SessionID,
		"lines":      len(order.Lines),
		"total":      order.Total,
		"payable":    order.Payable,
	})

	return nil
}

// formatTicket renders a confirmed order as a kitchen ticket
func formatTicket(order *models.OrderConfirmedMessage) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== ĐƠN HÀNG MỚI [%s] ===\n", order.ConfirmedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Phiên: %s\n", order.SessionID)
	for _, line := range order.Lines {
		fmt.Fprintf(&b, "- %d x %s\n", line.Quantity, line.Dish)
	}
	fmt.Fprintf(&b, "Tổng cộng: %d₫\n", order.Total)
	if order.Discount > 0 {
		fmt.Fprintf(&b, "Khuyến mãi: %s (-%d₫)\n", order.Promotion, order.Discount)
	}
	fmt.Fprintf(&b, "Thành tiền: %d₫", order.Payable)

	return b.String()
}

// gracefulShutdown closes the consumer
func (s *Subscriber) gracefulShutdown(requestID string) error {
	s.logger.Info("graceful_shutdown", "Starting graceful shutdown", requestID, nil)

	if s.consumer != nil {
		s.consumer.Close()
	}

	s.logger.Info("graceful_shutdown", "Graceful shutdown completed", requestID, nil)
	return nil
}
