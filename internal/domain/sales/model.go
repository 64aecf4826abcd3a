package sales

import "time"

// PaymentMethod define los medios de pago aceptados.
// @Enum cash, card, transfer
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

// SaleItem es una línea de la venta. El dashboard solo consume la cantidad
// de líneas; el resto se muestra tal cual en el detalle de la venta.
type SaleItem struct {
	Name      string
	Quantity  int
	UnitPrice float64
	Subtotal  float64
}

// Sale representa una venta cerrada en mostrador.
// Date viaja como YYYY-MM-DD; TotalAmount ausente se trata como 0.
type Sale struct {
	ID string

	Date          string
	TotalAmount   float64
	PaymentMethod PaymentMethod
	Items         []SaleItem
	ClientName    string

	CreatedAt time.Time
}
