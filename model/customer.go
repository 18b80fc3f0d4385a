package model

import "github.com/fernandollisboa/boardcamp/util/date"

type Customer struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	CPF      string    `json:"cpf"` // 11 digits, unique
	Birthday date.Date `json:"birthday"`
}
