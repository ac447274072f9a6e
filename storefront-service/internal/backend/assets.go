package backend

import "strings"

// Assets builds URLs of the static files the backend serves by filename.
type Assets struct {
	base string
}

func NewAssets(base string) Assets {
	return Assets{base: strings.TrimRight(base, "/")}
}

func (a Assets) BookCover(filename string) string {
	return a.url("/images/books/", filename)
}

func (a Assets) SellerDocument(filename string) string {
	return a.url("/images/sellerAadhar/", filename)
}

func (a Assets) url(dir, filename string) string {
	if filename == "" {
		return ""
	}
	return a.base + dir + escape(filename)
}
