package model

type CheckoutStatus string

const (
	CheckoutStatusIdle       CheckoutStatus = "idle"
	CheckoutStatusValidating CheckoutStatus = "validating"
	CheckoutStatusProcessing CheckoutStatus = "processing"
	CheckoutStatusSuccess    CheckoutStatus = "success"
	CheckoutStatusFailed     CheckoutStatus = "failed"
)

// 入力を受け付ける状態か
func (s CheckoutStatus) Editable() bool {
	return s == CheckoutStatusIdle || s == CheckoutStatusFailed
}

type FormField string

const (
	FormFieldName    FormField = "name"
	FormFieldEmail   FormField = "email"
	FormFieldPhone   FormField = "phone"
	FormFieldAddress FormField = "address"
)

func ParseFormField(s string) (FormField, bool) {
	switch f := FormField(s); f {
	case FormFieldName, FormFieldEmail, FormFieldPhone, FormFieldAddress:
		return f, true
	default:
		return "", false
	}
}

// 購入フォーム。name と email だけ必須。
type CheckoutForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (f CheckoutForm) With(field FormField, value string) CheckoutForm {
	switch field {
	case FormFieldName:
		f.Name = value
	case FormFieldEmail:
		f.Email = value
	case FormFieldPhone:
		f.Phone = value
	case FormFieldAddress:
		f.Address = value
	}
	return f
}
