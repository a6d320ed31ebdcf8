package handlers

import (
	"favorites-backend/internal/models"
	"favorites-backend/internal/utils"
)

type CreateListRequest struct {
	ListName string `json:"listName" example:"My List"`
	Films    []int  `json:"films" example:"1,2"`
}

type ListResponse struct {
	List *models.List `json:"list"`
}

type ListsResponse struct {
	Lists []models.ListSummary `json:"lists"`
	Meta  utils.PaginationMeta `json:"meta"`
}
