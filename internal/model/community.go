package model

type Community struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
