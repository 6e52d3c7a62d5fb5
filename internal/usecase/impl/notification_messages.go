package impl

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/util"
)

// orderMessages is the content of every channel for one order event.
type orderMessages struct {
	email     *service.EmailMessage
	sms       string
	pushTitle string
	pushBody  string
}

var confirmationEmail = template.Must(template.New("confirmation").Parse(`<h2>Thank you for your order, {{.Name}}!</h2>
<p>Order <strong>{{.OrderNumber}}</strong> is confirmed and being prepared.</p>
<table>
{{range .Items}}<tr><td>{{.Name}}</td><td>x{{.Quantity}}</td><td>{{.LineTotal}}</td></tr>
{{end}}</table>
<p>Subtotal: {{.Subtotal}}<br>Delivery: {{.DeliveryFee}}<br><strong>Total: {{.Total}}</strong></p>
<p>Delivering to {{.Address}}</p>
<p>{{.StoreName}}</p>`))

type emailItem struct {
	Name      string
	Quantity  int
	LineTotal string
}

type confirmationData struct {
	StoreName   string
	Name        string
	OrderNumber string
	Items       []emailItem
	Subtotal    string
	DeliveryFee string
	Total       string
	Address     string
}

// buildOrderMessages returns nil for event types customers are not told about.
func buildOrderMessages(storeName string, eventType entity.OrderEventType, order *entity.Order) *orderMessages {
	total := util.FormatMoney(order.Total, order.Currency)

	switch eventType {
	case entity.OrderEventPaid:
		return &orderMessages{
			email: confirmationMessage(storeName, order),
			sms: fmt.Sprintf("%s: payment of %s received for order %s. We are preparing it for delivery.",
				storeName, total, order.OrderNumber),
			pushTitle: "Order confirmed",
			pushBody:  fmt.Sprintf("Order %s is confirmed.", order.OrderNumber),
		}
	case entity.OrderEventPaymentFailed:
		return &orderMessages{
			sms: fmt.Sprintf("%s: payment for order %s was not completed and the order was cancelled. You can order again anytime.",
				storeName, order.OrderNumber),
			pushTitle: "Payment not completed",
			pushBody:  fmt.Sprintf("Order %s was cancelled because payment failed.", order.OrderNumber),
		}
	case entity.OrderEventDispatched:
		return &orderMessages{
			sms:       fmt.Sprintf("%s: order %s is on its way to %s.", storeName, order.OrderNumber, order.Shipping.City),
			pushTitle: "Order shipped",
			pushBody:  fmt.Sprintf("Order %s is on its way.", order.OrderNumber),
		}
	case entity.OrderEventDelivered:
		return &orderMessages{
			sms:       fmt.Sprintf("%s: order %s has been delivered. Thank you for shopping with us.", storeName, order.OrderNumber),
			pushTitle: "Order delivered",
			pushBody:  fmt.Sprintf("Order %s has been delivered.", order.OrderNumber),
		}
	case entity.OrderEventCancelled:
		return &orderMessages{
			pushTitle: "Order cancelled",
			pushBody:  fmt.Sprintf("Order %s was cancelled.", order.OrderNumber),
		}
	default:
		return nil
	}
}

func confirmationMessage(storeName string, order *entity.Order) *service.EmailMessage {
	data := confirmationData{
		StoreName:   storeName,
		Name:        order.Contact.Name,
		OrderNumber: order.OrderNumber,
		Subtotal:    util.FormatMoney(order.Subtotal, order.Currency),
		DeliveryFee: util.FormatMoney(order.DeliveryFee, order.Currency),
		Total:       util.FormatMoney(order.Total, order.Currency),
		Address:     formatAddress(order.Shipping),
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Thank you for your order, %s!\n\nOrder %s is confirmed.\n\n", data.Name, data.OrderNumber)
	for _, item := range order.Items {
		lineTotal := util.FormatMoney(item.LineTotal, order.Currency)
		data.Items = append(data.Items, emailItem{Name: item.ProductName, Quantity: item.Quantity, LineTotal: lineTotal})
		fmt.Fprintf(&text, "- %s x%d  %s\n", item.ProductName, item.Quantity, lineTotal)
	}
	fmt.Fprintf(&text, "\nSubtotal: %s\nDelivery: %s\nTotal: %s\n", data.Subtotal, data.DeliveryFee, data.Total)

	msg := &service.EmailMessage{
		To:       order.Contact.Email,
		Subject:  fmt.Sprintf("%s order %s confirmed", storeName, order.OrderNumber),
		TextBody: text.String(),
	}

	var html bytes.Buffer
	if err := confirmationEmail.Execute(&html, data); err == nil {
		msg.HTMLBody = html.String()
	}

	return msg
}

func formatAddress(addr entity.ShippingAddress) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{addr.Street, addr.Landmark, addr.City, addr.Region} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, ", ")
}
