package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type CreateUserMailData struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type OrderConfirmationMailData struct {
	CustomerName string `json:"customerName"`
	OrderNumber  string `json:"orderNumber"`
	Total        string `json:"total"`
}

type AssignmentNoticeMailData struct {
	TeamName    string `json:"teamName"`
	ProjectName string `json:"projectName"`
	Start       string `json:"start"`
	End         string `json:"end"`
}
