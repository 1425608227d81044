package dto

type BalanceResponseDTO struct {
	WalletBalance string `json:"walletBalance" example:"1500.25"`
	CreditScore   int64  `json:"creditScore" example:"15"`
}
