package game

type CreateGameReq struct {
	Name        string `json:"name" validate:"required"`
	Image       string `json:"image" validate:"omitempty,startswith=http"`
	StockTotal  int    `json:"stockTotal" validate:"required,min=1"`
	CategoryID  int64  `json:"categoryId" validate:"required,gt=0"`
	PricePerDay int    `json:"pricePerDay" validate:"required,min=1"`
}
