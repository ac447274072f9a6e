package backend

import (
	"context"
	"net/http"
	"strconv"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/models"
)

// NewBook is the seller's book form as sent to /books/createBook.
type NewBook struct {
	Title       string
	Author      string
	Description string
	Category    string
	Price       string
	Discount    string
	Stock       int
	Cover       *Upload
}

func (c *Client) ShowBooks(ctx context.Context, token string) ([]models.Book, error) {
	body, err := c.getJSON(ctx, token, "/books/showBooks", "books.list")
	if err != nil {
		return nil, err
	}
	return decodeList[models.Book](body, "books", "data")
}

func (c *Client) ShowBookByID(ctx context.Context, token, id string) (models.Book, error) {
	body, err := c.getJSON(ctx, token, "/books/showBookById/"+escape(id), "books.get")
	if err != nil {
		return models.Book{}, err
	}
	return decodeOne[models.Book](body, "book", "data")
}

func (c *Client) ShowBooksBySeller(ctx context.Context, token, sellerID string) ([]models.Book, error) {
	body, err := c.getJSON(ctx, token, "/books/showBooksBySeller/"+escape(sellerID), "books.by_seller")
	if err != nil {
		return nil, err
	}
	return decodeList[models.Book](body, "books", "data")
}

func (c *Client) CreateBook(ctx context.Context, token string, b NewBook) (string, error) {
	fields := map[string]string{
		"title":       b.Title,
		"author":      b.Author,
		"description": b.Description,
		"category":    b.Category,
		"price":       b.Price,
		"discount":    b.Discount,
		"stock":       strconv.Itoa(b.Stock),
	}
	var files []Upload
	if b.Cover != nil {
		cover := *b.Cover
		cover.Field = "coverImage"
		files = append(files, cover)
	}
	body, err := c.sendMultipart(ctx, token, "/books/createBook", "books.create", fields, files)
	if err != nil {
		return "", err
	}
	return messageOf(body), nil
}

func (c *Client) DeleteBook(ctx context.Context, token, id string) error {
	_, err := c.sendJSON(ctx, http.MethodDelete, token, "/books/deleteBook/"+escape(id), "books.delete", nil)
	return err
}
