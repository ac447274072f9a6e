package server

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/backend"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/consts"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/models"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/pricing"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/logger"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/validation"
)

const maxUploadSize = 10 << 20

type bookRow struct {
	Book      models.Book
	Cover     string
	Effective decimal.Decimal
}

func (s *Server) bookRows(books []models.Book) []bookRow {
	rows := make([]bookRow, 0, len(books))
	for _, b := range books {
		rows = append(rows, bookRow{Book: b, Cover: s.assets.BookCover(b.CoverImage), Effective: pricing.EffectivePrice(b)})
	}
	return rows
}

type booksView struct {
	Books []bookRow
	// CanDelete shows the per-row delete control to sellers.
	CanDelete bool
}

func (s *Server) AllBooks(ctx *gin.Context) {
	c := callerOf(ctx)
	books, err := s.Backend.ShowBooks(ctx, c.Token)
	if err != nil {
		s.pageFailed(ctx, err, "Failed to fetch books")
		return
	}
	s.render(ctx, http.StatusOK, "books", page{
		Title:   "Books",
		Content: booksView{Books: s.bookRows(books), CanDelete: c.Identity.Role == models.RoleSeller},
	})
}

type bookView struct {
	Row        bookRow
	Savings    decimal.Decimal
	Discount   bool
	Quantities []int
}

func (s *Server) BookInfo(ctx *gin.Context) {
	c := callerOf(ctx)
	book, err := s.Backend.ShowBookByID(ctx, c.Token, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			s.renderError(ctx, http.StatusNotFound, "Book not found")
			return
		}
		s.pageFailed(ctx, err, "Error fetching book details")
		return
	}
	view := bookView{
		Row:      s.bookRows([]models.Book{book})[0],
		Savings:  pricing.DiscountAmount(book),
		Discount: pricing.HasDiscount(book),
	}
	for q := 1; q <= book.Stock; q++ {
		view.Quantities = append(view.Quantities, q)
	}
	s.render(ctx, http.StatusOK, "book", page{Title: book.Title, Content: view})
}

type bookForm struct {
	Title       string  `form:"title" validate:"notblank"`
	Author      string  `form:"author" validate:"notblank"`
	Description string  `form:"description"`
	Category    string  `form:"category" validate:"notblank"`
	Price       float64 `form:"price" validate:"gt=0"`
	Discount    float64 `form:"discount" validate:"min=0,max=100"`
	Stock       int     `form:"stock" validate:"min=0"`
}

type newBookView struct {
	Form   bookForm
	Errors validation.FieldErrors
	Error  string
}

func (s *Server) NewBookPage(ctx *gin.Context) {
	s.render(ctx, http.StatusOK, "book_new", page{Title: "Add book", Content: newBookView{}})
}

func (s *Server) AddBook(ctx *gin.Context) {
	log := logger.Get()
	c := callerOf(ctx)
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxUploadSize)

	var form bookForm
	if err := ctx.ShouldBind(&form); err != nil {
		log.Error().Err(err).Msg("failed to parse book form")
		s.render(ctx, http.StatusBadRequest, "book_new", page{Title: "Add book", Content: newBookView{Form: form, Error: "Invalid book form"}})
		return
	}
	if errs := validation.Check(s.valid, form); errs != nil {
		s.render(ctx, http.StatusBadRequest, "book_new", page{Title: "Add book", Content: newBookView{Form: form, Errors: errs}})
		return
	}
	cover, err := formUpload(ctx, "coverImage")
	if err != nil {
		log.Error().Err(err).Msg("failed to read cover image")
		s.render(ctx, http.StatusBadRequest, "book_new", page{Title: "Add book", Content: newBookView{Form: form, Error: "Failed to read cover image"}})
		return
	}

	msg, err := s.Backend.CreateBook(ctx, c.Token, backend.NewBook{
		Title:       form.Title,
		Author:      form.Author,
		Description: form.Description,
		Category:    form.Category,
		Price:       strconv.FormatFloat(form.Price, 'f', -1, 64),
		Discount:    strconv.FormatFloat(form.Discount, 'f', -1, 64),
		Stock:       form.Stock,
		Cover:       cover,
	})
	if err != nil {
		if s.backendFailed(ctx, err) {
			return
		}
		log.Error().Err(err).Msg("failed to create book")
		s.render(ctx, http.StatusBadGateway, "book_new", page{
			Title:   "Add book",
			Content: newBookView{Form: form, Error: describe(err, "Failed to add book")},
		})
		return
	}
	if msg == "" {
		msg = "Book added successfully!"
	}
	s.flash(ctx, FlashSuccess, msg)
	ctx.Redirect(http.StatusSeeOther, consts.RouteDashboard)
}

// RemoveBook deletes a book once the seller has confirmed. An unconfirmed
// post renders the question first.
func (s *Server) RemoveBook(ctx *gin.Context) {
	c := callerOf(ctx)
	id := ctx.Param("id")
	if ctx.PostForm("confirmed") != "yes" {
		s.render(ctx, http.StatusOK, "confirm", page{Title: "Delete book", Content: confirmView{
			Message: "Are you sure you want to delete this book?",
			Action:  ctx.Request.URL.Path,
			Cancel:  consts.RouteDashboard,
			Label:   "Delete",
		}})
		return
	}
	if err := s.Backend.DeleteBook(ctx, c.Token, id); err != nil {
		s.actionFailed(ctx, err, "Failed to delete book", consts.RouteDashboard)
		return
	}
	s.flash(ctx, FlashSuccess, "Book deleted successfully!")
	ctx.Redirect(http.StatusSeeOther, consts.RouteDashboard)
}

type confirmView struct {
	Message string
	Action  string
	Cancel  string
	Label   string
	// Hidden fields are posted back with the confirmation.
	Hidden map[string]string
}

// formUpload reads an optional file field. A missing file is not an error.
func formUpload(ctx *gin.Context, field string) (*backend.Upload, error) {
	fh, err := ctx.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	data, err := readFileHeader(fh)
	if err != nil {
		return nil, err
	}
	return &backend.Upload{
		Field:       field,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func readFileHeader(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxUploadSize))
}
