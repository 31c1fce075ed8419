package dto

type CreateTagRequest struct {
	Name string `json:"name" form:"name"`
}
