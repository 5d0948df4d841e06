package api

// Payload shapes for the OBS banking API. Field names follow the JSON the
// server emits; amounts are returned as decimal numbers and displayed as
// received, the client never computes balances.

type Account struct {
	ID            int64   `json:"id"`
	AccountNumber string  `json:"accountNumber"`
	AccountType   string  `json:"accountType"`
	Balance       float64 `json:"balance"`
	Active        bool    `json:"active"`
	Username      string  `json:"username,omitempty"`
	BusinessName  string  `json:"businessName,omitempty"`
}

type Transaction struct {
	ID          int64   `json:"id"`
	Timestamp   string  `json:"timestamp"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type,omitempty"`
	Status      string  `json:"status,omitempty"`
}

type Bill struct {
	ID            int64   `json:"id"`
	AccountNumber string  `json:"accountNumber"`
	BillerName    string  `json:"billerName"`
	Amount        float64 `json:"amount"`
	PaidAt        string  `json:"paidAt,omitempty"`
	Status        string  `json:"status,omitempty"`
}

type RecurringPayment struct {
	ID                  int64   `json:"id"`
	FromAccountNumber   string  `json:"fromAccountNumber"`
	TargetAccountNumber string  `json:"targetAccountNumber"`
	Amount              float64 `json:"amount"`
	Frequency           string  `json:"frequency"`
	StartDate           string  `json:"startDate"`
	EndDate             string  `json:"endDate,omitempty"`
	Status              string  `json:"status"`
}

type User struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phoneNumber"`
	Roles       []string `json:"roles"`
	Active      bool     `json:"active"`
}

// Request bodies. The validate tags are checked client-side before any
// network call so field errors surface without a round trip.

type RegisterRequest struct {
	Username    string   `json:"username" validate:"required,min=3,max=32,alphanum"`
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=6,max=64"`
	PhoneNumber string   `json:"phoneNumber" validate:"required,min=7,max=15,numeric"`
	Role        []string `json:"role,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ProfileUpdateRequest struct {
	FullName    string `json:"fullName,omitempty" validate:"omitempty,max=64"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber,omitempty" validate:"omitempty,min=7,max=15,numeric"`
}

type CreateAccountRequest struct {
	AccountType  string `json:"-" validate:"required,oneof=SAVINGS CURRENT"`
	BusinessName string `json:"businessName,omitempty" validate:"omitempty,max=64"`
	BusinessType string `json:"businessType,omitempty" validate:"omitempty,max=64"`
}

type TransferRequest struct {
	FromAccountNumber string  `json:"fromAccountNumber" validate:"required"`
	ToAccountNumber   string  `json:"toAccountNumber" validate:"required,nefield=FromAccountNumber"`
	Amount            float64 `json:"amount" validate:"required,gt=0"`
}

type BillPayRequest struct {
	AccountNumber string  `validate:"required"`
	BillerName    string  `validate:"required"`
	Amount        float64 `validate:"required,gt=0"`
}

type CreateRecurringRequest struct {
	FromAccountNumber   string  `json:"fromAccountNumber" validate:"required"`
	TargetAccountNumber string  `json:"targetAccountNumber" validate:"required,nefield=FromAccountNumber"`
	Amount              float64 `json:"amount" validate:"required,gt=0"`
	Frequency           string  `json:"frequency" validate:"required,oneof=DAILY WEEKLY MONTHLY"`
	StartDate           string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate             string  `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type DepositRequest struct {
	AccountNumber string  `json:"accountNumber" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
}

type CreateBankerRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=32,alphanum"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6,max=64"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=7,max=15,numeric"`
}

// MessageResponse is the generic success/failure envelope many
// endpoints return.
type MessageResponse struct {
	Message string `json:"message"`
}
