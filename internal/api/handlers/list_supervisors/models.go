package list_supervisors

import "net/url"

// ListParams параметры поиска по справочнику руководителей
type ListParams struct {
	Query      string
	Department string
}

// FromQuery читает q и department из query строки
func FromQuery(query url.Values) ListParams {
	return ListParams{
		Query:      query.Get("q"),
		Department: query.Get("department"),
	}
}
