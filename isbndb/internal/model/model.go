package model

import "github.com/Astemirdum/isbndb-service/pkg/isbndb"

type SearchResponse struct {
	Total int               `json:"total"`
	Items []isbndb.Resource `json:"items"`
}

type BatchFindRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,max=50,dive,required"`
}

type BatchFindResponse struct {
	Items   []isbndb.Resource `json:"items"`
	Missing []string          `json:"missing"`
}
