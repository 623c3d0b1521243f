package dialogue

import (
	"fmt"
	"strings"

	"foodchat/internal/models"
)

// MsgServiceBusy is the generic reply for a collaborator outage. The chat
// service reuses it when the order hand-off itself fails.
const MsgServiceBusy = "Xin lỗi, hệ thống đang bận. Bạn vui lòng thử lại sau."

// Canned reply texts. The assistant speaks Vietnamese.
const (
	msgInvalidQuantity   = "Số lượng không hợp lệ, bạn vui lòng nhập một số nguyên dương."
	msgServiceBusy       = MsgServiceBusy
	msgEmptyOrder        = "Bạn chưa đặt món nào."
	msgNothingToConfirm  = "Không có đơn hàng để xác nhận."
	msgOrderConfirmed    = "Đơn hàng của bạn đã được xác nhận! Cảm ơn bạn."
	msgOrderCancelled    = "Đơn hàng của bạn đã được hủy."
	msgFallback          = "Xin lỗi, tôi chưa hiểu ý bạn. Bạn có thể nói lại không?"
	msgFallbackExhausted = "Tôi vẫn chưa hiểu bạn. Vui lòng thử lại sau."
)

func msgDishNotFound(name string) string {
	return fmt.Sprintf("Món \"%s\" không có trong thực đơn của chúng tôi.", name)
}

func msgAddedToOrder(quantity int, dish string) string {
	return fmt.Sprintf("Đã thêm %d phần %s vào đơn hàng.", quantity, dish)
}

func msgAskQuantity(dish string) string {
	return fmt.Sprintf("Bạn muốn gọi bao nhiêu phần %s ạ?", dish)
}

func msgMenu(dishes []models.Dish) string {
	var b strings.Builder
	b.WriteString("Đây là menu của chúng tôi:")
	for _, dish := range dishes {
		fmt.Fprintf(&b, "\n- %s: %d₫", dish.Name, dish.Price)
	}
	return b.String()
}
