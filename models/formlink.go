package models

// FormLink is one external form the dealership staff can open from the app.
type FormLink struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Link string `json:"link"`
}

// FormLinksResponse is the payload for GET /form-links.
type FormLinksResponse struct {
	Success bool       `json:"success"`
	Forms   []FormLink `json:"forms"`
}
