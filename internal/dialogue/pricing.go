package dialogue

import (
	"fmt"
	"strings"

	"foodchat/internal/models"
)

// Receipt is a priced order: surviving lines, totals and the applied
// promotion, if any
type Receipt struct {
	Lines     []models.OrderLine
	Total     int64
	Discount  int64
	Payable   int64
	Promotion *models.PromotionRule
}

// PriceOrder computes line totals, the order total and the best matching
// promotion. Lines with a non-positive quantity or a negative unit price
// are treated as corrupt and skipped. Among all rules whose MinTotal the
// order reaches, the one with the largest MinTotal wins; the discount is
// floored to a whole currency unit.
func PriceOrder(lines []models.OrderLine, rules []models.PromotionRule) Receipt {
	receipt := Receipt{}

	for _, line := range lines {
		if line.Quantity <= 0 || line.UnitPrice < 0 {
			continue
		}
		receipt.Lines = append(receipt.Lines, line)
		receipt.Total += int64(line.Quantity) * line.UnitPrice
	}

	for i := range rules {
		rule := rules[i]
		if rule.MinTotal > receipt.Total {
			continue
		}
		if receipt.Promotion == nil || rule.MinTotal > receipt.Promotion.MinTotal {
			receipt.Promotion = &rule
		}
	}

	if receipt.Promotion != nil {
		receipt.Discount = receipt.Total * int64(receipt.Promotion.DiscountPercent) / 100
	}
	receipt.Payable = receipt.Total - receipt.Discount

	return receipt
}

// Summarize renders a priced order as the order-summary reply: one line
// per surviving order line, the total, the promotion and discount when one
// applies, the payable amount and a confirmation prompt. An empty order
// list short-circuits to a distinct reply without computing anything.
func Summarize(lines []models.OrderLine, rules []models.PromotionRule) string {
	if len(lines) == 0 {
		return msgEmptyOrder
	}

	receipt := PriceOrder(lines, rules)

	var b strings.Builder
	b.WriteString("Đơn hàng của bạn:")
	for _, line := range receipt.Lines {
		fmt.Fprintf(&b, "\n- %d x %s: %d₫", line.Quantity, line.Dish, int64(line.Quantity)*line.UnitPrice)
	}
	fmt.Fprintf(&b, "\nTổng cộng: %d₫", receipt.Total)
	if receipt.Promotion != nil {
		fmt.Fprintf(&b, "\nKhuyến mãi: %s (giảm %d₫)", receipt.Promotion.Description, receipt.Discount)
	}
	fmt.Fprintf(&b, "\nThành tiền: %d₫", receipt.Payable)
	b.WriteString("\nBạn có muốn xác nhận không?")

	return b.String()
}
