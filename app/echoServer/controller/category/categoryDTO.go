package category

type CreateCategoryReq struct {
	Name string `json:"name" validate:"required,min=3"`
}
