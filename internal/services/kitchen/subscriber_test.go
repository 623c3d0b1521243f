package kitchen

import (
	"strings"
	"testing"
	"time"

	"foodchat/internal/models"
)

func TestFormatTicket(t *testing.T) {
	order := &models.OrderConfirmedMessage{
		SessionID: "s1",
		Lines: []models.OrderLine{
			{Dish: "phở bò", Quantity: 2, UnitPrice: 50000},
			{Dish: "trà sữa", Quantity: 1, UnitPrice: 40000},
		},
		Total:       140000,
		Discount:    14000,
		Payable:     126000,
		Promotion:   "Giảm 10% cho đơn hàng từ 90000₫",
		ConfirmedAt: time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC),
	}

	ticket := formatTicket(order)

	for _, want := range []string{
		"[2025-03-01 12:30:00]",
		"Phiên: s1",
		"- 2 x phở bò",
		"- 1 x trà sữa",
		"Tổng cộng: 140000₫",
		"Khuyến mãi: Giảm 10% cho đơn hàng từ 90000₫ (-14000₫)",
		"Thành tiền: 126000₫",
	} {
		if !strings.Contains(ticket, want) {
			t.Errorf("ticket missing %q:\n%s", want, ticket)
		}
	}
}

func TestFormatTicket_NoPromotion(t *testing.T) {
	order := &models.OrderConfirmedMessage{
		SessionID: "s2",
		Lines:     []models.OrderLine{{Dish: "bánh mì", Quantity: 1, UnitPrice: 30000}},
		Total:     30000,
		Payable:   30000,
	}

	ticket := formatTicket(order)
	if strings.Contains(ticket, "Khuyến mãi") {
		t.Errorf("ticket should not mention a promotion:\n%s", ticket)
	}
	if !strings.Contains(ticket, "Thành tiền: 30000₫") {
		t.Errorf("ticket missing payable line:\n%s", ticket)
	}
}
