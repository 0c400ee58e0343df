package dto

// PaymentMethodInput is a tagged union: Type selects which detail block must
// be present; the others must be nil.
type PaymentMethodInput struct {
	Type      string              `json:"type" binding:"required,oneof=card bank digital"`
	Card      *CardMethodInput    `json:"card,omitempty"`
	Bank      *BankMethodInput    `json:"bank,omitempty"`
	Digital   *DigitalMethodInput `json:"digital,omitempty"`
	IsDefault bool                `json:"is_default"`
}

type CardMethodInput struct {
	CardNumber string `json:"card_number" binding:"required"`
	ExpiryDate string `json:"expiry_date" binding:"required"` // MM/YY
	CVV        string `json:"cvv" binding:"required"`
	HolderName string `json:"holder_name" binding:"required"`
}

type BankMethodInput struct {
	BankName      string `json:"bank_name" binding:"required"`
	Branch        string `json:"branch"`
	AccountNumber string `json:"account_number" binding:"required"`
	HolderName    string `json:"holder_name" binding:"required"`
}

type DigitalMethodInput struct {
	Provider string `json:"provider" binding:"required"`
	Handle   string `json:"handle" binding:"required"`
}
